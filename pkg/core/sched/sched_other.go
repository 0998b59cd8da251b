//go:build !unix && !windows

package sched

import (
	"errors"
	"fmt"
)

type fallbackAdapter struct{}

// Native returns the adapter for the running platform.
func Native() Adapter {
	return fallbackAdapter{}
}

func (fallbackAdapter) SetPriority(delta int8) error {
	return fmt.Errorf("%s priority class: %w", TierFor(delta), errors.ErrUnsupported)
}

func (fallbackAdapter) Exec(argv []string) (int, error) {
	return spawn(argv)
}
