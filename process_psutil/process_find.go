// Package process_psutil reads the process table through gopsutil. It backs
// the darwin build, where there is no procfs to scan.
package process_psutil

import (
	"fmt"

	psprocess "github.com/shirou/gopsutil/v3/process"

	"killtree/process"
)

// PsutilProcessFinder implements the process.ProcessFinder interface with gopsutil
type PsutilProcessFinder struct {
	log process.Logger
}

// NewProcessFinder creates a PsutilProcessFinder
func NewProcessFinder(log process.Logger) process.ProcessFinder {
	if log == nil {
		log = process.Discard
	}
	return &PsutilProcessFinder{log: log}
}

// FindAllProcesses returns every process gopsutil can describe. A process
// whose parent or name can no longer be read is skipped.
func (f *PsutilProcessFinder) FindAllProcesses() ([]process.ProcessInfo, error) {
	procs, err := psprocess.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	results := make([]process.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		info, err := describe(p)
		if err != nil {
			f.log.Debugln("Skipping process", p.Pid, ":", err)
			continue
		}
		results = append(results, info)
	}
	return results, nil
}

func describe(p *psprocess.Process) (process.ProcessInfo, error) {
	if p.Pid < 0 {
		return process.ProcessInfo{}, fmt.Errorf("%w: negative process id %d", process.ErrInvalidCast, p.Pid)
	}

	ppid, err := p.Ppid()
	if err != nil {
		return process.ProcessInfo{}, fmt.Errorf("failed to read parent of %d: %w", p.Pid, err)
	}
	if ppid < 0 {
		return process.ProcessInfo{}, fmt.Errorf("%w: negative parent process id %d", process.ErrInvalidCast, ppid)
	}

	name, err := p.Name()
	if err != nil {
		return process.ProcessInfo{}, fmt.Errorf("failed to read name of %d: %w", p.Pid, err)
	}

	return process.ProcessInfo{
		PID:  process.ProcessID(p.Pid),
		PPID: process.ProcessID(ppid),
		Name: name,
	}, nil
}
