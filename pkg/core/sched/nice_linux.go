package sched

import "golang.org/x/sys/unix"

// currentNice reads the niceness of the calling process. The raw Linux
// syscall reports 20-nice so that the result is never negative.
func currentNice() (int, error) {
	prio, err := unix.Getpriority(unix.PRIO_PROCESS, 0)
	if err != nil {
		return 0, err
	}
	return 20 - prio, nil
}
