//go:build windows

package process_windows

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"killtree/process"
)

// WindowsProcessFinder implements the process.ProcessFinder interface with a
// toolhelp snapshot
type WindowsProcessFinder struct {
	log process.Logger
}

// NewProcessFinder creates a WindowsProcessFinder
func NewProcessFinder(log process.Logger) process.ProcessFinder {
	if log == nil {
		log = process.Discard
	}
	return &WindowsProcessFinder{log: log}
}

// FindAllProcesses walks a CreateToolhelp32Snapshot of every running process
func (f *WindowsProcessFinder) FindAllProcesses() ([]process.ProcessInfo, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("CreateToolhelp32Snapshot failed: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32First(snapshot, &entry); err != nil {
		return nil, fmt.Errorf("Process32First failed: %w", err)
	}

	var results []process.ProcessInfo
	for {
		results = append(results, process.ProcessInfo{
			PID:  process.ProcessID(entry.ProcessID),
			PPID: process.ProcessID(entry.ParentProcessID),
			Name: windows.UTF16ToString(entry.ExeFile[:]),
		})

		err := windows.Process32Next(snapshot, &entry)
		if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Process32Next failed: %w", err)
		}
	}

	f.log.Debugln("Toolhelp snapshot has", len(results), "processes")
	return results, nil
}

// WindowsTerminator kills processes with TerminateProcess
type WindowsTerminator struct {
	ExitCode uint32
}

// Kill opens pid for termination and terminates it
func (t WindowsTerminator) Kill(pid process.ProcessID) (process.KillOutput, error) {
	handle, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, uint32(pid))
	if err != nil {
		// No process with that id
		if errors.Is(err, windows.ERROR_INVALID_PARAMETER) {
			return process.GoneOutput(pid, err), nil
		}
		return process.KillOutput{}, fmt.Errorf("OpenProcess %d failed: %w", pid, err)
	}
	defer windows.CloseHandle(handle)

	if err := windows.TerminateProcess(handle, t.ExitCode); err != nil {
		// The process has exited but the handle is still open somewhere
		if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
			return process.GoneOutput(pid, err), nil
		}
		return process.KillOutput{}, fmt.Errorf("TerminateProcess %d failed: %w", pid, err)
	}

	return process.KilledOutput(pid), nil
}

// Builder creates WindowsTerminators. Windows has no signals so Config.Signal is ignored.
type Builder struct{}

// NewTerminatorBuilder returns the windows process.TerminatorBuilder
func NewTerminatorBuilder() process.TerminatorBuilder {
	return Builder{}
}

func (Builder) NewTerminator(process.Config) (process.Terminator, error) {
	return WindowsTerminator{ExitCode: 1}, nil
}
