//go:build unix

package sched

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

type unixAdapter struct{}

// Native returns the adapter for the running platform.
func Native() Adapter {
	return unixAdapter{}
}

// SetPriority adds delta to the current niceness, as nice(2) does.
func (unixAdapter) SetPriority(delta int8) error {
	current, err := currentNice()
	if err != nil {
		return err
	}
	return unix.Setpriority(unix.PRIO_PROCESS, 0, ClampNice(current+int(delta)))
}

// Exec replaces the process image. It returns only when execve fails.
// A file the kernel cannot execute (no #! line) is run by /bin/sh, as
// execvp does.
func (unixAdapter) Exec(argv []string) (int, error) {
	if err := checkArgv(argv); err != nil {
		return 0, err
	}
	path, err := lookPath(argv[0])
	if err != nil {
		return 0, &ExecError{Name: argv[0], Err: err}
	}
	env := os.Environ()
	// #nosec G204 -- nice runs user-provided command
	err = syscall.Exec(path, argv, env)
	if errors.Is(err, unix.ENOEXEC) {
		err = syscall.Exec(shellPath, shellArgv(argv, path), env)
	}
	return 0, &ExecError{Name: argv[0], Err: err}
}

const shellPath = "/bin/sh"

// shellArgv builds the argument vector for running path as a shell script.
func shellArgv(argv []string, path string) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[0], path)
	return append(out, argv[1:]...)
}

// lookPath resolves name the way execvp does and reduces lookup failures
// to the errno execvp would have set.
func lookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err == nil || errors.Is(err, exec.ErrDot) {
		return path, nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return "", unix.ENOENT
	}
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, unix.EISDIR) {
		return "", unix.EACCES
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return "", pathErr.Err
	}
	return "", err
}
