package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/td0m/taskline/pkg/task"
	"github.com/td0m/taskline/pkg/task/date"
)

const (
	byDivider = " /by "
	atDivider = " /at "
)

// Parse turns one line of input into a Command.
//
// The line is split once on the first space into a keyword, matched case
// insensitively, and a remainder. A command that needs a remainder and has
// none fails with ErrMissingArgument; a remainder in the wrong shape fails
// with the error specific to that argument.
func Parse(line string) (Command, error) {
	keyword, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	keyword = cases.Fold().String(keyword)

	switch keyword {
	case "bye":
		return Exit{}, nil
	case "list":
		return List{}, nil
	case "undo":
		return Undo{}, nil
	case "clear":
		return Clear{}, nil
	case "mark", "unmark", "delete", "todo", "deadline", "event", "find":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, keyword)
	}

	if strings.TrimSpace(rest) == "" {
		return nil, fmt.Errorf("%w: %s needs an argument", ErrMissingArgument, keyword)
	}

	switch keyword {
	case "mark", "unmark":
		i, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return Mark{Index: i, Done: keyword == "mark"}, nil
	case "delete":
		i, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return Delete{Index: i}, nil
	case "todo":
		t, err := task.NewTodo(rest)
		if err != nil {
			return nil, descriptionError(err)
		}
		return Add{Task: t}, nil
	case "deadline":
		description, by, err := parseTimed(rest, byDivider)
		if err != nil {
			return nil, err
		}
		t, err := task.NewDeadline(description, by)
		if err != nil {
			return nil, descriptionError(err)
		}
		return Add{Task: t}, nil
	case "event":
		description, at, err := parseTimed(rest, atDivider)
		if err != nil {
			return nil, err
		}
		t, err := task.NewEvent(description, at)
		if err != nil {
			return nil, descriptionError(err)
		}
		return Add{Task: t}, nil
	default: // find
		terms := parseTerms(rest)
		if len(terms) == 0 {
			return nil, fmt.Errorf("%w: find needs at least one term", ErrMissingArgument)
		}
		return Find{Terms: terms}, nil
	}
}

// parseIndex converts a 1-based position into a 0-based index.
// Whether the index exists is only known when the command runs.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive number", ErrInvalidIndex, s)
	}
	return n - 1, nil
}

func parseTimed(s, divider string) (string, time.Time, error) {
	description, at, found := strings.Cut(s, divider)
	if !found {
		return "", time.Time{}, fmt.Errorf("%w: expected %q followed by a time", ErrMissingTime, strings.TrimSpace(divider))
	}
	t, err := date.Parse(at)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, at)
	}
	if strings.TrimSpace(description) == "" {
		return "", time.Time{}, fmt.Errorf("%w: no description before %q", ErrMissingArgument, strings.TrimSpace(divider))
	}
	return description, t, nil
}

func descriptionError(err error) error {
	if errors.Is(err, task.ErrLineBreak) {
		return fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return fmt.Errorf("%w: %v", ErrMissingArgument, err)
}

func parseTerms(s string) []string {
	terms := []string{}
	for _, term := range strings.Split(s, ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
