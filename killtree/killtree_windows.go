//go:build windows

package killtree

import (
	"killtree/process"
	"killtree/process_windows"
	"killtree/tree"
)

var currentPlatform = tree.Windows

func newProcessFinder(_ process.Config, log process.Logger) process.ProcessFinder {
	return process_windows.NewProcessFinder(log)
}

func newTerminatorBuilder() process.TerminatorBuilder {
	return process_windows.NewTerminatorBuilder()
}
