package testutil

import (
	"bytes"
	"os/exec"
	"testing"
)

// Command wraps exec.Command for test helpers.
func Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...) // #nosec G204 -- test helper for external command
}

// RunCommand runs cmd with captured output and returns stdout, stderr and
// the exit code. Failures to start the command are fatal.
func RunCommand(t *testing.T, cmd *exec.Cmd) (string, string, int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		} else {
			t.Fatalf("run %s: %v", cmd.Path, err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}
