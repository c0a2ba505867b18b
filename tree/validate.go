package tree

import (
	"fmt"

	"killtree/process"
)

// ValidateProcessID rejects reserved process ids and ids above the platform maximum
func ValidateProcessID(pid process.ProcessID, platform Platform) error {
	for _, reserved := range platform.Reserved {
		if pid == reserved.PID {
			return fmt.Errorf("%w %d: not allowed to kill %s", process.ErrInvalidProcessID, pid, reserved.Name)
		}
	}
	if pid > platform.MaxProcessID {
		return fmt.Errorf("%w %d: process id is too large, available max process id: %d",
			process.ErrInvalidProcessID, pid, platform.MaxProcessID)
	}
	return nil
}
