// Package testutil provides shared testing utilities and fixtures.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcarmo/go-nice/pkg/core"
)

// TempFile creates a temp file with content, returns path.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// CaptureStdio creates a Stdio with captured output buffers.
// Returns the Stdio, stdout buffer, and stderr buffer.
func CaptureStdio(input string) (*core.Stdio, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	return &core.Stdio{
		In:  strings.NewReader(input),
		Out: out,
		Err: errBuf,
	}, out, errBuf
}

// AssertExitCode checks that the exit code matches expected.
func AssertExitCode(t *testing.T, got, want int) {
	t.Helper()
	assert.Equal(t, want, got, "exit code")
}

// AssertOutput checks that an output stream matches expected exactly.
func AssertOutput(t *testing.T, got, want string) {
	t.Helper()
	assert.Equal(t, want, got, "output")
}

// AssertOutputContains checks that an output stream contains want.
func AssertOutputContains(t *testing.T, got, want string) {
	t.Helper()
	assert.Contains(t, got, want, "output")
}

// RunApplet is a helper type for running applet tests.
type RunApplet func(stdio *core.Stdio, args []string) int

// AppletTestCase defines a parameterized test case for applets.
type AppletTestCase struct {
	Name       string                                    // Test name
	Args       []string                                  // Command line arguments
	Input      string                                    // Stdin input
	WantCode   int                                       // Expected exit code
	WantOut    string                                    // Expected stdout (exact match)
	WantOutSub string                                    // Expected stdout substring
	WantErr    string                                    // Expected stderr substring
	WantNoErr  bool                                      // Expect empty stderr
	Check      func(t *testing.T, stdout, stderr string) // Optional post-run check
}

// CaptureAndRun runs an applet with captured stdio and returns the output buffers.
func CaptureAndRun(t *testing.T, run RunApplet, args []string, input string) (*bytes.Buffer, *bytes.Buffer, int) {
	t.Helper()
	stdio, out, errBuf := CaptureStdio(input)
	code := run(stdio, args)
	return out, errBuf, code
}

// RunAppletTests runs a slice of parameterized applet test cases.
func RunAppletTests(t *testing.T, run RunApplet, tests []AppletTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			out, errBuf, code := CaptureAndRun(t, run, tt.Args, tt.Input)

			AssertExitCode(t, code, tt.WantCode)

			if tt.WantOut != "" {
				AssertOutput(t, out.String(), tt.WantOut)
			}
			if tt.WantOutSub != "" {
				AssertOutputContains(t, out.String(), tt.WantOutSub)
			}

			if tt.WantErr != "" {
				AssertOutputContains(t, errBuf.String(), tt.WantErr)
			}
			if tt.WantNoErr {
				assert.Empty(t, errBuf.String(), "stderr")
			}

			if tt.Check != nil {
				tt.Check(t, out.String(), errBuf.String())
			}
		})
	}
}
