package tree_test

import (
	"sync"

	"killtree/process"
)

// scenarioSnapshot is the tree rooted at 10 used across the scenario tests
func scenarioSnapshot() []process.ProcessInfo {
	return []process.ProcessInfo{
		{PID: 10, PPID: 1, Name: "a"},
		{PID: 11, PPID: 10, Name: "b"},
		{PID: 12, PPID: 10, Name: "c"},
		{PID: 13, PPID: 11, Name: "d"},
	}
}

// recordingTerminator kills everything in alive and reports the rest as gone
type recordingTerminator struct {
	mu     sync.Mutex
	alive  map[process.ProcessID]bool
	killed []process.ProcessID
}

func newRecordingTerminator(infos []process.ProcessInfo) *recordingTerminator {
	alive := make(map[process.ProcessID]bool, len(infos))
	for _, info := range infos {
		alive[info.PID] = true
	}
	return &recordingTerminator{alive: alive}
}

func (r *recordingTerminator) Kill(pid process.ProcessID) (process.KillOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.killed = append(r.killed, pid)
	if !r.alive[pid] {
		return process.GoneOutput(pid, errNoSuchProcess), nil
	}
	delete(r.alive, pid)
	return process.KilledOutput(pid), nil
}

func (r *recordingTerminator) NewTerminator(process.Config) (process.Terminator, error) {
	return r, nil
}

func (r *recordingTerminator) calls() []process.ProcessID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]process.ProcessID(nil), r.killed...)
}

type stringError string

func (e stringError) Error() string { return string(e) }

const errNoSuchProcess = stringError("no such process")

// recordingLogger keeps debug lines so tests can check diagnostics
type recordingLogger struct {
	mu    sync.Mutex
	debug [][]interface{}
	warn  [][]interface{}
}

func (l *recordingLogger) Debugln(v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = append(l.debug, v)
}

func (l *recordingLogger) Infoln(...interface{}) {}

func (l *recordingLogger) Warn(v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warn = append(l.warn, v)
}
