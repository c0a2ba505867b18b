package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"killtree/process"
	"killtree/tree"
)

func TestBuildChildIndex(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		infos := []process.ProcessInfo{
			{PID: 1, PPID: 0, Name: "1"},
			{PID: 3, PPID: 1, Name: "3"},
			{PID: 2, PPID: 1, Name: "2"},
		}
		index := tree.BuildChildIndex(infos, tree.NoFilter)
		assert.Len(t, index, 2)
		assert.Equal(t, []process.ProcessID{1}, index[0])
		assert.Equal(t, []process.ProcessID{2, 3}, index[1])
	})

	t.Run("self parented record is dropped", func(t *testing.T) {
		infos := []process.ProcessInfo{
			{PID: 0, PPID: 0, Name: "System Idle Process"},
			{PID: 4, PPID: 0, Name: "System"},
			{PID: 8, PPID: 4, Name: "smss.exe"},
		}
		index := tree.BuildChildIndex(infos, tree.SelfParented)
		assert.Equal(t, tree.ChildIndex{0: {4}, 4: {8}}, index)
	})

	t.Run("nil filter keeps everything", func(t *testing.T) {
		infos := []process.ProcessInfo{{PID: 1, PPID: 1}}
		assert.Equal(t, tree.ChildIndex{1: {1}}, tree.BuildChildIndex(infos, nil))
	})

	t.Run("duplicate pid indexed once", func(t *testing.T) {
		infos := []process.ProcessInfo{
			{PID: 5, PPID: 2},
			{PID: 5, PPID: 3},
			{PID: 6, PPID: 2},
		}
		index := tree.BuildChildIndex(infos, tree.NoFilter)
		assert.Equal(t, []process.ProcessID{5, 6}, index[2])
		assert.NotContains(t, index, process.ProcessID(3))
	})

	t.Run("empty snapshot", func(t *testing.T) {
		assert.Empty(t, tree.BuildChildIndex(nil, tree.NoFilter))
	})
}

func TestIndexByPID(t *testing.T) {
	byPID := tree.IndexByPID(scenarioSnapshot())
	assert.Len(t, byPID, 4)
	assert.Equal(t, "d", byPID[13].Name)
	assert.Equal(t, process.ProcessID(11), byPID[13].PPID)
}
