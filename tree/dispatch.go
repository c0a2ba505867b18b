package tree

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"killtree/process"
)

// Dispatch runs plan through terminator in the given mode
func Dispatch(mode process.DispatchMode, plan KillPlan, terminator process.Terminator, concurrency int) ([]process.KillOutput, error) {
	switch mode {
	case process.Sequential:
		return DispatchSequential(plan, terminator)
	case process.Concurrent:
		return DispatchConcurrent(plan, terminator, concurrency)
	default:
		return nil, fmt.Errorf("unknown dispatch mode %d", mode)
	}
}

// DispatchSequential kills the plan in order on the calling goroutine. The first
// hard failure is returned and the outputs gathered so far are dropped.
func DispatchSequential(plan KillPlan, terminator process.Terminator) ([]process.KillOutput, error) {
	outputs := make([]process.KillOutput, 0, len(plan))
	for _, pid := range plan {
		output, err := terminator.Kill(pid)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// DispatchConcurrent kills every pid of the plan as its own unit of work, with at
// most limit units in flight (NumCPU when limit <= 0). Outputs come back in
// completion order. After a hard failure no new unit is started, units
// already running finish and their outputs are dropped.
func DispatchConcurrent(plan KillPlan, terminator process.Terminator, limit int) ([]process.KillOutput, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make(chan process.KillOutput, len(plan))
	var failed atomic.Bool

	var g errgroup.Group
	g.SetLimit(limit)

	for _, pid := range plan {
		if failed.Load() {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					failed.Store(true)
					err = fmt.Errorf("%w: kill %d panicked: %v", process.ErrTaskJoin, pid, r)
				}
			}()

			output, err := terminator.Kill(pid)
			if err != nil {
				failed.Store(true)
				return err
			}
			results <- output
			return nil
		})
	}

	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}

	outputs := make([]process.KillOutput, 0, len(plan))
	for output := range results {
		outputs = append(outputs, output)
	}
	return outputs, nil
}
