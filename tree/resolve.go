package tree

import (
	"slices"

	"killtree/process"
)

// KillPlan is the order in which processes are killed: every child comes
// before its parent
type KillPlan []process.ProcessID

// DiscoveryOrder walks index breadth first from target. When includeTarget is
// false the target is left out but its children are still visited. A target
// missing from the index yields just the target, the terminator reports it
// as gone later.
func DiscoveryOrder(target process.ProcessID, index ChildIndex, includeTarget bool) []process.ProcessID {
	var discovered []process.ProcessID

	// A real snapshot is acyclic; visited only protects against broken ones
	visited := map[process.ProcessID]bool{target: true}
	queue := []process.ProcessID{target}

	for len(queue) > 0 {
		pid := queue[0]
		queue = queue[1:]

		if pid != target || includeTarget {
			discovered = append(discovered, pid)
		}

		for _, child := range index[pid] {
			if visited[child] {
				continue
			}
			visited[child] = true
			queue = append(queue, child)
		}
	}

	return discovered
}

// Resolve returns the kill plan for target: the discovery order reversed
func Resolve(target process.ProcessID, index ChildIndex, includeTarget bool) KillPlan {
	plan := KillPlan(DiscoveryOrder(target, index, includeTarget))
	slices.Reverse(plan)
	return plan
}
