package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/td0m/taskline/pkg/task/date"
)

// Decode parses a line produced by Task.Data.
//
// The kind and flag are taken from the front of the line and, for deadlines
// and events, the date from the back, so descriptions may contain the
// separator themselves.
func Decode(line string) (Task, error) {
	parts := strings.SplitN(line, separator, 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 fields in %q", ErrMalformedData, line)
	}
	kind, rest := Kind(parts[0]), parts[2]
	marked, err := strconv.ParseBool(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid done flag %q", ErrMalformedData, parts[1])
	}

	var t Task
	switch kind {
	case KindTodo:
		t, err = NewTodo(rest)
	case KindDeadline, KindEvent:
		i := strings.LastIndex(rest, separator)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s task without a date in %q", ErrMalformedData, kind, line)
		}
		at, perr := date.ParseData(rest[i+len(separator):])
		if perr != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedData, perr)
		}
		if kind == KindDeadline {
			t, err = NewDeadline(rest[:i], at)
		} else {
			t, err = NewEvent(rest[:i], at)
		}
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedData, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	if marked {
		t.MarkAsDone()
	}
	return t, nil
}
