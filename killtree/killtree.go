// Package killtree kills a process and all of its descendants on the running OS.
package killtree

import (
	"os"

	"killtree/process"
	"killtree/tree"
)

// NewKiller wires the running OS's finder and terminator into a tree.Killer.
// A nil log discards everything.
func NewKiller(cfg process.Config, log process.Logger) *tree.Killer {
	if log == nil {
		log = process.Discard
	}
	k := tree.NewKiller(currentPlatform, newProcessFinder(cfg, log), newTerminatorBuilder())
	k.Log = log
	return k
}

// KillTree sends SIGTERM to pid and all of its descendants, children first
func KillTree(pid process.ProcessID) ([]process.Outcome, error) {
	return KillTreeWithConfig(pid, process.DefaultConfig())
}

// KillTreeWithSignal kills pid and all of its descendants with the named signal
func KillTreeWithSignal(pid process.ProcessID, signal string) ([]process.Outcome, error) {
	cfg := process.DefaultConfig()
	cfg.Signal = signal
	return KillTreeWithConfig(pid, cfg)
}

// KillTreeWithConfig kills the tree rooted at pid as cfg describes
func KillTreeWithConfig(pid process.ProcessID, cfg process.Config) ([]process.Outcome, error) {
	return NewKiller(cfg, nil).KillTreeWithConfig(pid, cfg)
}

// KillChildren kills every descendant of the calling process, leaving the caller alive
func KillChildren(cfg process.Config) ([]process.Outcome, error) {
	cfg.IncludeTarget = false
	return KillTreeWithConfig(process.ProcessID(os.Getpid()), cfg)
}

// GetAvailableMaxProcessID returns the largest process id accepted on this OS
func GetAvailableMaxProcessID() process.ProcessID {
	return currentPlatform.MaxProcessID
}
