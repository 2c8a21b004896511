package cmd

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidOption = errors.New("cmd: invalid option")
	ErrUsage         = errors.New("cmd: usage")
	ErrNotRegistered = errors.New("cmd: command not registered")
)

// OptionError reports an option character a command does not accept. Its
// message follows the wording of the Unix tools.
type OptionError struct {
	Command Name
	Option  rune
	Allowed string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: invalid option -- '%c'\nThis version of %s %s", e.Command, e.Option, e.Command, e.supported())
}

func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

func (e *OptionError) supported() string {
	if e.Allowed == "" {
		return "doesn't support any options"
	}

	quoted := make([]string, 0, len(e.Allowed))
	for _, c := range e.Allowed {
		quoted = append(quoted, fmt.Sprintf("'%c'", c))
	}
	if len(quoted) == 1 {
		return "only supports option " + quoted[0]
	}

	last := len(quoted) - 1
	return "only supports options " + strings.Join(quoted[:last], ", ") + " and " + quoted[last]
}

// UsageError reports a wrong argument count or shape.
type UsageError struct {
	Message string
}

func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Unwrap() error {
	return ErrUsage
}

// Fail turns an error into an error result carrying its message.
func Fail(err error) Result {
	return Errorf("%s", err.Error())
}
