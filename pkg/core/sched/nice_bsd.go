//go:build unix && !linux

package sched

import "golang.org/x/sys/unix"

func currentNice() (int, error) {
	return unix.Getpriority(unix.PRIO_PROCESS, 0)
}
