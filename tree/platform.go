package tree

import (
	"math"

	"killtree/process"
)

// IndexFilter reports whether a record must be left out of the child index
type IndexFilter func(info process.ProcessInfo) bool

// NoFilter keeps every record
func NoFilter(process.ProcessInfo) bool { return false }

// SelfParented drops records that name themselves as parent, such as the
// Windows System Idle Process
func SelfParented(info process.ProcessInfo) bool {
	return info.PID == info.PPID
}

// ReservedProcess is a process id that must never be targeted
type ReservedProcess struct {
	PID  process.ProcessID
	Name string
}

// Platform carries the OS specific rules the engine applies without looking
// at the running OS itself
type Platform struct {
	Name         string
	MaxProcessID process.ProcessID
	Reserved     []ReservedProcess
	Filter       IndexFilter
}

var (
	// Linux: pid_max can be raised to 2^22
	Linux = Platform{
		Name:         "linux",
		MaxProcessID: 0x400000,
		Reserved: []ReservedProcess{
			{PID: 0, Name: "kernel process"},
			{PID: 1, Name: "init process"},
		},
		Filter: NoFilter,
	}

	// Darwin: PID_MAX is 99999 and the kernel hands out ids below it
	Darwin = Platform{
		Name:         "darwin",
		MaxProcessID: 99999 - 1,
		Reserved: []ReservedProcess{
			{PID: 0, Name: "kernel process"},
			{PID: 1, Name: "init process"},
		},
		Filter: NoFilter,
	}

	// Windows process ids are DWORDs, in practice multiples of 4
	Windows = Platform{
		Name:         "windows",
		MaxProcessID: math.MaxUint32,
		Reserved: []ReservedProcess{
			{PID: 0, Name: "System Idle Process"},
			{PID: 4, Name: "System"},
		},
		Filter: SelfParented,
	}
)
