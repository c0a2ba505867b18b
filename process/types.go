package process

// ProcessID represents a unique identifier for a process
type ProcessID uint32

// ProcessInfo contains the snapshot fields needed to walk a process tree
type ProcessInfo struct {
	PID  ProcessID // Process ID
	PPID ProcessID // Parent Process ID
	Name string    // Process name (comm, pbi_name or szExeFile)
}

// OutcomeKind tells a clean kill apart from a process that was already gone
type OutcomeKind int

const (
	// Killed means the signal or terminate call was delivered
	Killed OutcomeKind = iota
	// MaybeAlreadyTerminated means the OS reported the process missing, most likely
	// because it exited between the snapshot and the kill
	MaybeAlreadyTerminated
)

func (k OutcomeKind) String() string {
	switch k {
	case Killed:
		return "killed"
	case MaybeAlreadyTerminated:
		return "maybe-already-terminated"
	default:
		return "unknown"
	}
}

// KillOutput is the result of a single Terminator.Kill call
type KillOutput struct {
	Kind   OutcomeKind
	PID    ProcessID
	Reason error // set for MaybeAlreadyTerminated
}

// Outcome is the per-process result returned to callers of a tree kill
type Outcome struct {
	Kind   OutcomeKind
	PID    ProcessID
	PPID   ProcessID // only set for Killed
	Name   string    // only set for Killed
	Reason error     // only set for MaybeAlreadyTerminated
}

// KilledOutput builds a Killed KillOutput for pid
func KilledOutput(pid ProcessID) KillOutput {
	return KillOutput{Kind: Killed, PID: pid}
}

// GoneOutput builds a MaybeAlreadyTerminated KillOutput for pid
func GoneOutput(pid ProcessID, reason error) KillOutput {
	return KillOutput{Kind: MaybeAlreadyTerminated, PID: pid, Reason: reason}
}
