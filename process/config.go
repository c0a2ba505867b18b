package process

// DispatchMode selects how kills are issued across the plan
type DispatchMode int

const (
	// Sequential kills one process at a time, children first, on the calling goroutine
	Sequential DispatchMode = iota
	// Concurrent issues every kill as its own unit of work and collects results as they arrive
	Concurrent
)

func (m DispatchMode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Concurrent:
		return "concurrent"
	default:
		return "unknown"
	}
}

// DefaultSignal is sent when Config.Signal is empty. Ignored on Windows.
const DefaultSignal = "SIGTERM"

// Config controls a single tree kill
type Config struct {
	Signal        string       // signal name, e.g. SIGTERM or SIGKILL
	IncludeTarget bool         // kill the target itself, not only its descendants
	Mode          DispatchMode // sequential or concurrent dispatch
	Concurrency   int          // max in-flight kills in Concurrent mode, 0 means NumCPU
}

// DefaultConfig returns SIGTERM, target included, sequential dispatch
func DefaultConfig() Config {
	return Config{
		Signal:        DefaultSignal,
		IncludeTarget: true,
		Mode:          Sequential,
	}
}
