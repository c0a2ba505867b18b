package tree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"killtree/process"
	"killtree/tree"
)

func TestValidateProcessID(t *testing.T) {
	tests := []struct {
		name     string
		platform tree.Platform
		pid      process.ProcessID
		wantErr  string
	}{
		{name: "linux kernel", platform: tree.Linux, pid: 0, wantErr: "invalid process id 0: not allowed to kill kernel process"},
		{name: "linux init", platform: tree.Linux, pid: 1, wantErr: "invalid process id 1: not allowed to kill init process"},
		{name: "linux max", platform: tree.Linux, pid: 0x400000},
		{name: "linux max plus one", platform: tree.Linux, pid: 0x400001, wantErr: "invalid process id 4194305: process id is too large, available max process id: 4194304"},
		{name: "linux ordinary", platform: tree.Linux, pid: 777},
		{name: "darwin kernel", platform: tree.Darwin, pid: 0, wantErr: "not allowed to kill kernel process"},
		{name: "darwin init", platform: tree.Darwin, pid: 1, wantErr: "not allowed to kill init process"},
		{name: "darwin max", platform: tree.Darwin, pid: 99998},
		{name: "darwin max plus one", platform: tree.Darwin, pid: 99999, wantErr: "available max process id: 99998"},
		{name: "windows idle", platform: tree.Windows, pid: 0, wantErr: "not allowed to kill System Idle Process"},
		{name: "windows system", platform: tree.Windows, pid: 4, wantErr: "not allowed to kill System"},
		{name: "windows pid 1 allowed", platform: tree.Windows, pid: 1},
		{name: "windows max", platform: tree.Windows, pid: math.MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tree.ValidateProcessID(tt.pid, tt.platform)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, process.ErrInvalidProcessID)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAvailableMaxProcessID(t *testing.T) {
	assert.Equal(t, process.ProcessID(0x400000), tree.NewKiller(tree.Linux, nil, nil).AvailableMaxProcessID())
	assert.Equal(t, process.ProcessID(99998), tree.NewKiller(tree.Darwin, nil, nil).AvailableMaxProcessID())
	assert.Equal(t, process.ProcessID(0xFFFFFFFF), tree.NewKiller(tree.Windows, nil, nil).AvailableMaxProcessID())
}
