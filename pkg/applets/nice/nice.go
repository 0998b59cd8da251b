// Package nice implements the nice command.
package nice

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rcarmo/go-nice/pkg/core"
	"github.com/rcarmo/go-nice/pkg/core/sched"
)

// Version is reported by --version. Release builds set it with
// -ldflags "-X github.com/rcarmo/go-nice/pkg/applets/nice.Version=...".
var Version = "dev"

const usageText = `Usage: nice [OPTION] [COMMAND [ARG]...]
Run COMMAND with an adjusted niceness, which affects process scheduling.
Niceness values range from -20 (most favorable to the process) to 19
(least favorable to the process).

Mandatory arguments to long options are mandatory for short options too.
  -n, --adjustment=N   add integer N to the niceness (default 10)
      --help     display this help and exit
      --version  output version information and exit

NOTE: your shell may have its own version of nice, which usually supersedes
the version described here.  Please refer to your shell's documentation
for details about the options it supports.
`

const adjustmentErrorText = `nice: option requires an argument -- 'n'
Try 'nice --help' for more information.
`

func versionText() string {
	return "nice (go-nice) " + Version + "\n"
}

// Run executes the nice command. args is the full argument vector,
// program name included.
//
// Usage:
//
//	nice [-n N | --adjustment=N] [--] COMMAND [ARG]...
//
// The niceness of the current process is raised by N (default 10) and the
// process is then replaced by COMMAND. On success Run does not return on
// Unix; elsewhere it returns the exit status of COMMAND.
func Run(stdio *core.Stdio, args []string) int {
	return RunWith(stdio, sched.Native(), args)
}

// RunWith is Run with an explicit platform adapter.
func RunWith(stdio *core.Stdio, adapter sched.Adapter, args []string) int {
	params, err := Parse(args)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			stdio.Print(perr.Error())
			return perr.ExitCode()
		}
		return core.Failf(stdio, "nice", "%v", err)
	}

	stdio.Printf("self name: %s\n", params.Name)
	stdio.Printf("command params: %s\n", formatCommand(params.Command))

	if err := adapter.SetPriority(params.Priority); err != nil {
		core.Warnf(stdio, "nice", "cannot set niceness: %v", err)
	}
	code, err := adapter.Exec(params.Command)
	if err != nil {
		return core.Failf(stdio, "nice", "%v", err)
	}
	return code
}

// formatCommand renders the command as a bracketed, quoted list.
func formatCommand(command []string) string {
	quoted := make([]string, len(command))
	for i, arg := range command {
		quoted[i] = strconv.Quote(arg)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
