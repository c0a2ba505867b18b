package process

// ProcessFinder returns a flat snapshot of every live process on the machine.
// Implementations skip records they cannot read instead of failing the scan.
type ProcessFinder interface {
	// FindAllProcesses returns information about all running processes
	FindAllProcesses() ([]ProcessInfo, error)
}

// Terminator kills a single process
type Terminator interface {
	// Kill terminates pid. A process that no longer exists is reported as a
	// MaybeAlreadyTerminated output, not an error.
	Kill(pid ProcessID) (KillOutput, error)
}

// TerminatorBuilder creates a Terminator from a Config, validating the signal name
type TerminatorBuilder interface {
	NewTerminator(cfg Config) (Terminator, error)
}

// TerminatorFunc adapts a function to the Terminator interface
type TerminatorFunc func(pid ProcessID) (KillOutput, error)

func (f TerminatorFunc) Kill(pid ProcessID) (KillOutput, error) {
	return f(pid)
}

// ProcessFinderFunc adapts a function to the ProcessFinder interface
type ProcessFinderFunc func() ([]ProcessInfo, error)

func (f ProcessFinderFunc) FindAllProcesses() ([]ProcessInfo, error) {
	return f()
}

//go:generate mockgen -destination=mock_process/mock_process.go -package=mock_process killtree/process ProcessFinder,Terminator,TerminatorBuilder
