package sched

import (
	"errors"
	"os"
	"os/exec"
)

// spawn runs argv as a child with the current stdio and environment, waits
// for it and reports its exit status. It stands in for exec where the
// process image cannot be replaced.
func spawn(argv []string) (int, error) {
	if err := checkArgv(argv); err != nil {
		return 0, err
	}
	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204 -- nice runs user-provided command
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code >= 0 {
				return code, nil
			}
			return 1, nil
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			err = execErr.Err
		}
		return 0, &ExecError{Name: argv[0], Err: err}
	}
	return 0, nil
}
