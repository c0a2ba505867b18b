// Package tree resolves the descendants of a process from a snapshot and kills
// them children first.
package tree

import (
	"fmt"

	"killtree/process"
)

// Killer wires a platform's rules to its process directory and terminator
type Killer struct {
	Platform    Platform
	Finder      process.ProcessFinder
	Terminators process.TerminatorBuilder
	Log         process.Logger
}

// NewKiller creates a Killer that logs nothing
func NewKiller(platform Platform, finder process.ProcessFinder, terminators process.TerminatorBuilder) *Killer {
	return &Killer{
		Platform:    platform,
		Finder:      finder,
		Terminators: terminators,
		Log:         process.Discard,
	}
}

// AvailableMaxProcessID returns the largest process id the platform accepts
func (k *Killer) AvailableMaxProcessID() process.ProcessID {
	return k.Platform.MaxProcessID
}

// KillTree kills pid and all of its descendants with the default config
func (k *Killer) KillTree(pid process.ProcessID) ([]process.Outcome, error) {
	return k.KillTreeWithConfig(pid, process.DefaultConfig())
}

// KillTreeWithConfig kills the descendants of pid, children before parents, and
// pid itself unless cfg.IncludeTarget is false.
//
// The snapshot is taken once. A process started after the snapshot is not
// killed, and a pid recycled by the OS between the snapshot and the kill is
// signaled as if it were the original process.
func (k *Killer) KillTreeWithConfig(pid process.ProcessID, cfg process.Config) ([]process.Outcome, error) {
	log := k.Log
	if log == nil {
		log = process.Discard
	}

	if err := ValidateProcessID(pid, k.Platform); err != nil {
		return nil, err
	}

	if cfg.Signal == "" {
		cfg.Signal = process.DefaultSignal
	}
	terminator, err := k.Terminators.NewTerminator(cfg)
	if err != nil {
		return nil, err
	}

	infos, err := k.Finder.FindAllProcesses()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	log.Debugln("Process snapshot has", len(infos), "entries")

	index := BuildChildIndex(infos, k.Platform.Filter)
	if !cfg.IncludeTarget {
		log.Debugln("Skipping target process id", pid)
	}
	plan := Resolve(pid, index, cfg.IncludeTarget)
	log.Infoln("Killing", len(plan), "processes", cfg.Mode.String(), "with", cfg.Signal)

	outputs, err := Dispatch(cfg.Mode, plan, terminator, cfg.Concurrency)
	if err != nil {
		return nil, err
	}

	outcomes := Aggregate(outputs, IndexByPID(infos), log)
	log.Infoln("Kill complete,", len(outcomes), "outcomes")
	return outcomes, nil
}
