// Package core provides the I/O plumbing and exit codes shared by applets.
package core

import (
	"fmt"
	"io"
	"os"
)

// Exit codes returned by applets. A replaced or spawned command reports
// its own status instead.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Stdio holds the standard I/O streams for an applet.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Printf writes a formatted message to stdout.
func (s *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Print writes a message to stdout.
func (s *Stdio) Print(args ...any) {
	fmt.Fprint(s.Out, args...)
}

// Warnf prints a non-fatal "applet: message" line to stderr.
func Warnf(stdio *Stdio, applet, format string, args ...any) {
	stdio.Errorf("%s: %s\n", applet, fmt.Sprintf(format, args...))
}

// Failf prints an "applet: message" line to stderr and returns ExitFailure.
func Failf(stdio *Stdio, applet, format string, args ...any) int {
	Warnf(stdio, applet, format, args...)
	return ExitFailure
}
