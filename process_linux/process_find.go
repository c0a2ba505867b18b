//go:build linux

package process_linux

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"killtree/process"
)

// DefaultProcRoot is where the kernel mounts procfs
const DefaultProcRoot = "/proc"

// LinuxProcessFinder implements the process.ProcessFinder interface by scanning procfs
type LinuxProcessFinder struct {
	Root   string // procfs mount point
	MaxDOP uint   // parallel readers, 0 or 1 scans sequentially
	log    process.Logger
}

// NewProcessFinder creates a LinuxProcessFinder scanning /proc one entry at a time
func NewProcessFinder(log process.Logger) process.ProcessFinder {
	return NewProcessFinderAt(DefaultProcRoot, 0, log)
}

// NewParallelProcessFinder creates a LinuxProcessFinder reading up to maxdop
// /proc entries at once
func NewParallelProcessFinder(maxdop uint, log process.Logger) process.ProcessFinder {
	return NewProcessFinderAt(DefaultProcRoot, maxdop, log)
}

// NewProcessFinderAt creates a LinuxProcessFinder for a procfs mounted at root
func NewProcessFinderAt(root string, maxdop uint, log process.Logger) *LinuxProcessFinder {
	if log == nil {
		log = process.Discard
	}
	return &LinuxProcessFinder{Root: root, MaxDOP: maxdop, log: log}
}

// FindAllProcesses returns information about all running processes, ordered by PID.
// Entries that disappear or cannot be parsed while scanning are skipped.
func (f *LinuxProcessFinder) FindAllProcesses() ([]process.ProcessInfo, error) {
	pids, err := f.listPIDs()
	if err != nil {
		return nil, err
	}

	if f.MaxDOP <= 1 {
		results := make([]process.ProcessInfo, 0, len(pids))
		for _, pid := range pids {
			if info, ok := f.readEntry(pid); ok {
				results = append(results, info)
			}
		}
		return results, nil
	}

	return f.findParallel(pids), nil
}

// findParallel reads each /proc/<pid> entry as its own unit of work
func (f *LinuxProcessFinder) findParallel(pids []process.ProcessID) []process.ProcessInfo {
	maxdop := f.MaxDOP
	numCPU := uint(runtime.NumCPU())
	if maxdop > numCPU {
		maxdop = numCPU
		f.log.Debugln("Limiting maxdop to number of CPUs:", maxdop)
	}

	var g errgroup.Group
	g.SetLimit(int(maxdop))

	var resultsMutex sync.Mutex
	results := make([]process.ProcessInfo, 0, len(pids))

	for _, pid := range pids {
		g.Go(func() error {
			info, ok := f.readEntry(pid)
			if !ok {
				return nil
			}
			resultsMutex.Lock()
			results = append(results, info)
			resultsMutex.Unlock()
			return nil
		})
	}

	// Units never fail, a bad entry is skipped inside readEntry
	_ = g.Wait()

	slices.SortFunc(results, func(a, b process.ProcessInfo) int {
		return cmp.Compare(a.PID, b.PID)
	})
	return results
}

// listPIDs lists the numeric directories of the procfs root in ascending order
func (f *LinuxProcessFinder) listPIDs() ([]process.ProcessID, error) {
	entries, err := os.ReadDir(f.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Root, err)
	}

	var pids []process.ProcessID
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pid, err := strconv.ParseUint(entry.Name(), 10, 32)
		if err != nil {
			// Not a PID directory (self, sys, net, ...)
			continue
		}
		pids = append(pids, process.ProcessID(pid))
	}

	// os.ReadDir sorts by name, which is not numeric order
	slices.Sort(pids)
	return pids, nil
}

// readEntry reads one process and logs why it was skipped
func (f *LinuxProcessFinder) readEntry(pid process.ProcessID) (process.ProcessInfo, bool) {
	info, err := readProcessInfo(f.Root, pid)
	switch {
	case err == nil:
		return info, true
	case errors.Is(err, fs.ErrNotExist):
		// Process exited while we were scanning
		f.log.Debugln("Process", pid, "vanished during scan:", err)
	default:
		f.log.Warn("Skipping process ", pid, ": ", err)
	}
	return process.ProcessInfo{}, false
}

// readProcessInfo parses the Name and PPid fields of <root>/<pid>/status
func readProcessInfo(root string, pid process.ProcessID) (process.ProcessInfo, error) {
	statusPath := filepath.Join(root, strconv.FormatUint(uint64(pid), 10), "status")

	statusBytes, err := os.ReadFile(statusPath)
	if err != nil {
		return process.ProcessInfo{}, fmt.Errorf("failed to read %s: %w", statusPath, err)
	}

	return parseStatus(pid, statusPath, string(statusBytes))
}

func parseStatus(pid process.ProcessID, statusPath, status string) (process.ProcessInfo, error) {
	var (
		name    string
		ppid    process.ProcessID
		hasName bool
		hasPPid bool
	)

	for _, line := range strings.Split(status, "\n") {
		if hasName && hasPPid {
			break
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "Name":
			if value == "" {
				return process.ProcessInfo{}, fmt.Errorf("%w: %s: empty Name", process.ErrMalformedEntry, statusPath)
			}
			name = value
			hasName = true
		case "PPid":
			ppidVal, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return process.ProcessInfo{}, fmt.Errorf("%w: %s: PPid %q: %w", process.ErrMalformedEntry, statusPath, value, err)
			}
			ppid = process.ProcessID(ppidVal)
			hasPPid = true
		}
	}

	if !hasName {
		return process.ProcessInfo{}, fmt.Errorf("%w: %s: missing Name", process.ErrMalformedEntry, statusPath)
	}
	if !hasPPid {
		return process.ProcessInfo{}, fmt.Errorf("%w: %s: missing PPid", process.ErrMalformedEntry, statusPath)
	}

	return process.ProcessInfo{
		PID:  pid,
		PPID: ppid,
		Name: name,
	}, nil
}
