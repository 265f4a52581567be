package command

import (
	"errors"

	"github.com/td0m/taskline/pkg/task/date"
)

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingArgument    = errors.New("missing argument")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidTimeFormat  = errors.New("invalid time format")
	ErrMissingTime        = errors.New("missing time")
	ErrInvalidIndex       = errors.New("invalid index")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrPersistenceWrite   = errors.New("failed to write tasks")
)

type userMessage struct {
	err error
	msg string
}

// matched with errors.Is in order, so wrapped errors still resolve
var userMessages = []userMessage{
	{ErrUnknownCommand, "INVALID COMMAND"},
	{ErrMissingArgument, "TOO FEW ARGUMENTS SUPPLIED"},
	{ErrInvalidDescription, "DESCRIPTION MUST FIT ON ONE LINE"},
	{ErrInvalidTimeFormat, "INVALID TIME FORMAT (" + date.Pattern + ")"},
	{ErrMissingTime, "NO TIME SUPPLIED"},
	{ErrInvalidIndex, "INVALID INDEX"},
	{ErrNothingToUndo, "NOTHING TO UNDO"},
	{ErrPersistenceWrite, "UNABLE TO WRITE TO FILE"},
}

// UserMessage returns the message shown to the user when a line fails.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "SOMETHING WENT WRONG: " + err.Error()
}
