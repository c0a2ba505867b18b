package tree

import (
	"slices"

	"killtree/process"
)

// ChildIndex maps a parent pid to its children in ascending order
type ChildIndex map[process.ProcessID][]process.ProcessID

// BuildChildIndex turns a flat snapshot into a parent to children index.
// Records matching filter are skipped. A pid listed twice in the snapshot is
// indexed under the parent of its first record only.
func BuildChildIndex(infos []process.ProcessInfo, filter IndexFilter) ChildIndex {
	if filter == nil {
		filter = NoFilter
	}

	index := make(ChildIndex)
	seen := make(map[process.ProcessID]struct{}, len(infos))
	for _, info := range infos {
		if filter(info) {
			continue
		}
		if _, dup := seen[info.PID]; dup {
			continue
		}
		seen[info.PID] = struct{}{}
		index[info.PPID] = append(index[info.PPID], info.PID)
	}

	// The OS listing order is arbitrary, sort for a reproducible walk
	for _, children := range index {
		slices.Sort(children)
	}

	return index
}

// IndexByPID maps every record of the snapshot by its pid
func IndexByPID(infos []process.ProcessInfo) map[process.ProcessID]process.ProcessInfo {
	byPID := make(map[process.ProcessID]process.ProcessInfo, len(infos))
	for _, info := range infos {
		byPID[info.PID] = info
	}
	return byPID
}
