package tree

import (
	"killtree/process"
)

// Aggregate joins kill outputs with the snapshot records. byPID is consumed:
// each record is handed out at most once, so a pid never yields two Killed
// outcomes. A Killed output without a record is dropped.
func Aggregate(outputs []process.KillOutput, byPID map[process.ProcessID]process.ProcessInfo, log process.Logger) []process.Outcome {
	if log == nil {
		log = process.Discard
	}

	outcomes := make([]process.Outcome, 0, len(outputs))
	for _, output := range outputs {
		switch output.Kind {
		case process.Killed:
			info, ok := byPID[output.PID]
			if !ok {
				log.Debugln("Process info not found for killed process", output.PID)
				continue
			}
			delete(byPID, output.PID)

			outcomes = append(outcomes, process.Outcome{
				Kind: process.Killed,
				PID:  info.PID,
				PPID: info.PPID,
				Name: info.Name,
			})
		case process.MaybeAlreadyTerminated:
			outcomes = append(outcomes, process.Outcome{
				Kind:   process.MaybeAlreadyTerminated,
				PID:    output.PID,
				Reason: output.Reason,
			})
		}
	}
	return outcomes
}
