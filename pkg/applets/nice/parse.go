package nice

import (
	"strconv"
	"strings"
)

// DefaultPriority is the niceness delta used when no adjustment is given.
const DefaultPriority int8 = 10

const (
	shortFlag = "-n"
	longFlag  = "--adjustment"
)

// Params is the result of a successful Parse.
type Params struct {
	// Name is the program name from argv[0].
	Name string
	// Command is the program to run followed by its arguments. Never empty.
	Command []string
	// Priority is the niceness delta. The parser does not range-check it.
	Priority int8
}

// ErrorKind tells apart the ways Parse can refuse an argument list.
type ErrorKind int

const (
	HelpRequested ErrorKind = iota
	VersionRequested
	MissingAdjustment
	InvalidAdjustment
	EmptyCommand
)

func (k ErrorKind) String() string {
	switch k {
	case HelpRequested:
		return "help requested"
	case VersionRequested:
		return "version requested"
	case MissingAdjustment:
		return "missing adjustment"
	case InvalidAdjustment:
		return "invalid adjustment"
	case EmptyCommand:
		return "empty command"
	}
	return "unknown"
}

// ParseError carries the text to show the user. Help, version and an empty
// command are informational and exit 0; adjustment errors exit 1.
type ParseError struct {
	Kind ErrorKind
	msg  string
}

func (e *ParseError) Error() string {
	return e.msg
}

// ExitCode returns the process exit status for the error.
func (e *ParseError) ExitCode() int {
	switch e.Kind {
	case MissingAdjustment, InvalidAdjustment:
		return 1
	}
	return 0
}

func parseError(kind ErrorKind) *ParseError {
	switch kind {
	case HelpRequested, EmptyCommand:
		return &ParseError{Kind: kind, msg: usageText}
	case VersionRequested:
		return &ParseError{Kind: kind, msg: versionText()}
	}
	return &ParseError{Kind: kind, msg: adjustmentErrorText}
}

// Parse splits argv (program name first) into the niceness delta and the
// command to run. Option scanning stops at "--" or at the first argument
// that is not an option; everything from there on belongs to the command.
func Parse(argv []string) (Params, error) {
	p := Params{Priority: DefaultPriority}
	if len(argv) == 0 {
		return Params{}, parseError(EmptyCommand)
	}
	p.Name = argv[0]

	args := argv[1:]
	i := 0
scan:
	for ; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help":
			return Params{}, parseError(HelpRequested)
		case arg == "--version":
			return Params{}, parseError(VersionRequested)
		case arg == "--":
			i++
			break scan
		case arg == shortFlag || arg == longFlag:
			if i+1 >= len(args) {
				return Params{}, parseError(MissingAdjustment)
			}
			i++
			n, err := parseAdjustment(args[i])
			if err != nil {
				return Params{}, err
			}
			p.Priority = n
		case strings.HasPrefix(arg, longFlag):
			n, err := parseAdjustment(strings.TrimPrefix(arg[len(longFlag):], "="))
			if err != nil {
				return Params{}, err
			}
			p.Priority = n
		case strings.HasPrefix(arg, shortFlag):
			n, err := parseAdjustment(arg[len(shortFlag):])
			if err != nil {
				return Params{}, err
			}
			p.Priority = n
		default:
			break scan
		}
	}

	if i >= len(args) {
		return Params{}, parseError(EmptyCommand)
	}
	p.Command = append([]string(nil), args[i:]...)
	return p, nil
}

func parseAdjustment(value string) (int8, error) {
	n, err := strconv.ParseInt(value, 10, 8)
	if err != nil {
		return 0, parseError(InvalidAdjustment)
	}
	return int8(n), nil
}
