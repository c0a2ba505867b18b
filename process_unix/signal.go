//go:build linux || darwin

package process_unix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sys/unix"

	"killtree/process"
)

// ParseSignal resolves a signal name such as SIGKILL, kill or sigint to its number
func ParseSignal(name string) (unix.Signal, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return 0, fmt.Errorf("%w: empty signal name", process.ErrInvalidSignalName)
	}
	if !strings.HasPrefix(upper, "SIG") {
		upper = "SIG" + upper
	}

	sig := unix.SignalNum(upper)
	if sig == 0 {
		return 0, fmt.Errorf("%w: %s", process.ErrInvalidSignalName, name)
	}
	return sig, nil
}

// SignalTerminator sends one signal to each process it kills
type SignalTerminator struct {
	Signal unix.Signal
}

// Kill sends the signal to pid. ESRCH means the process is already gone.
func (t SignalTerminator) Kill(pid process.ProcessID) (process.KillOutput, error) {
	if pid > math.MaxInt32 {
		return process.KillOutput{}, fmt.Errorf("%w: process id %d does not fit in pid_t", process.ErrInvalidCast, pid)
	}

	err := unix.Kill(int(pid), t.Signal)
	switch {
	case err == nil:
		return process.KilledOutput(pid), nil
	case errors.Is(err, unix.ESRCH):
		return process.GoneOutput(pid, err), nil
	default:
		return process.KillOutput{}, fmt.Errorf("failed to send %v to process %d: %w", unix.SignalName(t.Signal), pid, err)
	}
}

// Builder creates SignalTerminators from the signal named in a Config
type Builder struct{}

// NewTerminatorBuilder returns the unix process.TerminatorBuilder
func NewTerminatorBuilder() process.TerminatorBuilder {
	return Builder{}
}

func (Builder) NewTerminator(cfg process.Config) (process.Terminator, error) {
	name := cfg.Signal
	if name == "" {
		name = process.DefaultSignal
	}

	sig, err := ParseSignal(name)
	if err != nil {
		return nil, err
	}
	return SignalTerminator{Signal: sig}, nil
}
