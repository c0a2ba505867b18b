//go:build darwin

package killtree

import (
	"killtree/process"
	"killtree/process_psutil"
	"killtree/process_unix"
	"killtree/tree"
)

var currentPlatform = tree.Darwin

func newProcessFinder(_ process.Config, log process.Logger) process.ProcessFinder {
	return process_psutil.NewProcessFinder(log)
}

func newTerminatorBuilder() process.TerminatorBuilder {
	return process_unix.NewTerminatorBuilder()
}
