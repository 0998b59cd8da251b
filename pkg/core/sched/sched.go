// Package sched applies scheduling priority to the current process and
// hands execution over to another program.
//
// Each supported platform provides its own Adapter through Native. On Unix
// the niceness is adjusted relative to its current value and the process
// image is replaced with execve. Windows has no niceness scale, so the sign
// of the delta selects one of three priority classes and the command is
// spawned and waited for, its exit status passed through.
package sched

import (
	"errors"
	"fmt"
)

// Niceness bounds honoured by Unix schedulers.
const (
	MinNice = -20
	MaxNice = 19
)

var errEmptyCommand = errors.New("empty command")

// Adapter is the platform boundary used by the nice applet.
type Adapter interface {
	// SetPriority adjusts the current process priority by delta.
	SetPriority(delta int8) error
	// Exec runs argv[0] with argv as its argument vector, inheriting the
	// current file descriptors and environment. Where the process image is
	// replaced Exec only returns on failure. Otherwise it returns the exit
	// status of the finished child.
	Exec(argv []string) (int, error)
}

// ExecError reports that a command could not be started.
type ExecError struct {
	Name string
	Err  error
}

func (e *ExecError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Tier is a coarse scheduling class used where no niceness scale exists.
type Tier int

const (
	TierBelowNormal Tier = iota
	TierNormal
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierBelowNormal:
		return "below-normal"
	case TierHigh:
		return "high"
	default:
		return "normal"
	}
}

// TierFor maps a niceness delta onto a scheduling class by its sign only.
// The mapping is lossy: +1 and +19 both land in TierBelowNormal.
func TierFor(delta int8) Tier {
	switch {
	case delta > 0:
		return TierBelowNormal
	case delta < 0:
		return TierHigh
	default:
		return TierNormal
	}
}

// ClampNice limits an absolute niceness to [MinNice, MaxNice], matching
// what nice(2) does with out-of-range requests.
func ClampNice(n int) int {
	if n < MinNice {
		return MinNice
	}
	if n > MaxNice {
		return MaxNice
	}
	return n
}

func checkArgv(argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return &ExecError{Err: errEmptyCommand}
	}
	return nil
}
