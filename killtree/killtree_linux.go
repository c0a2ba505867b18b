//go:build linux

package killtree

import (
	"runtime"

	"killtree/process"
	"killtree/process_linux"
	"killtree/process_unix"
	"killtree/tree"
)

var currentPlatform = tree.Linux

func newProcessFinder(cfg process.Config, log process.Logger) process.ProcessFinder {
	if cfg.Mode == process.Concurrent {
		maxdop := cfg.Concurrency
		if maxdop <= 0 {
			maxdop = runtime.NumCPU()
		}
		return process_linux.NewParallelProcessFinder(uint(maxdop), log)
	}
	return process_linux.NewProcessFinder(log)
}

func newTerminatorBuilder() process.TerminatorBuilder {
	return process_unix.NewTerminatorBuilder()
}
