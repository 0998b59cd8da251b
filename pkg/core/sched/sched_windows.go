//go:build windows

package sched

import "golang.org/x/sys/windows"

type windowsAdapter struct{}

// Native returns the adapter for the running platform.
func Native() Adapter {
	return windowsAdapter{}
}

// SetPriority moves the current process into the priority class picked by
// TierFor. Child processes inherit the class.
func (windowsAdapter) SetPriority(delta int8) error {
	return windows.SetPriorityClass(windows.CurrentProcess(), priorityClass(TierFor(delta)))
}

// Exec spawns argv and waits, since Windows cannot replace a process image.
func (windowsAdapter) Exec(argv []string) (int, error) {
	return spawn(argv)
}

func priorityClass(t Tier) uint32 {
	switch t {
	case TierBelowNormal:
		return windows.BELOW_NORMAL_PRIORITY_CLASS
	case TierHigh:
		return windows.HIGH_PRIORITY_CLASS
	default:
		return windows.NORMAL_PRIORITY_CLASS
	}
}
