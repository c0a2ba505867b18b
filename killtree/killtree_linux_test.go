//go:build linux

package killtree_test

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"killtree/killtree"
	"killtree/process"
	"killtree/process_linux"
)

// spawnTree starts a shell with two sleeping children and waits until both
// children show up in /proc
func spawnTree(t *testing.T) (*exec.Cmd, process.ProcessID) {
	t.Helper()

	cmd := exec.Command("sh", "-c", "sleep 30 & sleep 30 & wait")
	require.NoError(t, cmd.Start())
	pid := process.ProcessID(cmd.Process.Pid)
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	finder := process_linux.NewProcessFinder(nil)
	require.Eventually(t, func() bool {
		infos, err := finder.FindAllProcesses()
		if err != nil {
			return false
		}
		children := 0
		for _, info := range infos {
			if info.PPID == pid {
				children++
			}
		}
		return children == 2
	}, 5*time.Second, 20*time.Millisecond)

	return cmd, pid
}

func TestKillTreeLinux(t *testing.T) {
	tests := []struct {
		name string
		mode process.DispatchMode
	}{
		{name: "sequential", mode: process.Sequential},
		{name: "concurrent", mode: process.Concurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, pid := spawnTree(t)

			cfg := process.DefaultConfig()
			cfg.Signal = "SIGKILL"
			cfg.Mode = tt.mode

			outcomes, err := killtree.KillTreeWithConfig(pid, cfg)
			require.NoError(t, err)
			require.Len(t, outcomes, 3)

			var sawTarget bool
			for _, o := range outcomes {
				assert.Equal(t, process.Killed, o.Kind)
				if o.PID == pid {
					sawTarget = true
				} else {
					assert.Equal(t, pid, o.PPID)
					assert.Equal(t, "sleep", o.Name)
				}
			}
			assert.True(t, sawTarget)

			if tt.mode == process.Sequential {
				assert.Equal(t, pid, outcomes[2].PID, "target is killed last")
			}

			assert.Error(t, cmd.Wait(), "shell should die from SIGKILL")
		})
	}
}

func TestKillTreeExcludingTarget(t *testing.T) {
	cmd, pid := spawnTree(t)

	cfg := process.DefaultConfig()
	cfg.Signal = "KILL"
	cfg.IncludeTarget = false

	outcomes, err := killtree.KillTreeWithConfig(pid, cfg)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.NotEqual(t, pid, o.PID)
		assert.Equal(t, process.Killed, o.Kind)
	}

	// The shell outlives its children; wait returns and it exits on its own
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not exit after its children were killed")
	}
}

func TestKillTreeWithSignalInvalid(t *testing.T) {
	cmd, pid := spawnTree(t)

	_, err := killtree.KillTreeWithSignal(pid, "SIGNOPE")
	assert.ErrorIs(t, err, process.ErrInvalidSignalName)

	// Nothing was signaled
	assert.Nil(t, cmd.ProcessState)
}

func TestGetAvailableMaxProcessIDLinux(t *testing.T) {
	assert.Equal(t, process.ProcessID(0x400000), killtree.GetAvailableMaxProcessID())
}

func TestKillChildren(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())
	child := process.ProcessID(cmd.Process.Pid)
	t.Cleanup(func() { _ = cmd.Wait() })

	cfg := process.DefaultConfig()
	cfg.Signal = "SIGKILL"

	outcomes, err := killtree.KillChildren(cfg)
	require.NoError(t, err)

	self := process.ProcessID(os.Getpid())
	var sawChild bool
	for _, o := range outcomes {
		assert.NotEqual(t, self, o.PID, "caller must survive")
		if o.PID == child {
			sawChild = true
			assert.Equal(t, process.Killed, o.Kind)
			assert.Equal(t, self, o.PPID)
		}
	}
	assert.True(t, sawChild)
}
