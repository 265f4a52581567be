// Package command parses input lines and applies them to a task list.
//
// Every mutating command validates first, then pushes a snapshot of the
// list onto the history, then mutates, then writes the list through the
// persistence writer. A command that fails validation leaves both the list
// and the history untouched.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/td0m/taskline/pkg/history"
	"github.com/td0m/taskline/pkg/persist"
	"github.com/td0m/taskline/pkg/task"
)

// Command is one parsed line. Implementations are small immutable values.
//
// Execute returns the message for the user. When the list changed but could
// not be written, both a message and an error wrapping ErrPersistenceWrite
// are returned.
type Command interface {
	Execute(l *task.List, h *history.History, w persist.Writer) (string, error)
	IsExit() bool
}

var (
	_ Command = Add{}
	_ Command = Delete{}
	_ Command = Mark{}
	_ Command = List{}
	_ Command = Find{}
	_ Command = Clear{}
	_ Command = Undo{}
	_ Command = Exit{}
)

// IsMutating reports whether c changes the list and therefore records history.
func IsMutating(c Command) bool {
	switch c.(type) {
	case Add, Delete, Mark, Clear:
		return true
	default:
		return false
	}
}

// Name is the keyword c was parsed from.
func Name(c Command) string {
	switch c := c.(type) {
	case Add:
		switch c.Task.Kind() {
		case task.KindDeadline:
			return "deadline"
		case task.KindEvent:
			return "event"
		default:
			return "todo"
		}
	case Delete:
		return "delete"
	case Mark:
		if c.Done {
			return "mark"
		}
		return "unmark"
	case List:
		return "list"
	case Find:
		return "find"
	case Clear:
		return "clear"
	case Undo:
		return "undo"
	case Exit:
		return "bye"
	default:
		return fmt.Sprintf("%T", c)
	}
}

func countLine(l *task.List) string {
	return strconv.Itoa(l.Size()) + " TASK(S) NOW."
}

// mutate records a snapshot, applies change and writes the result.
func mutate(l *task.List, h *history.History, w persist.Writer, change func()) error {
	h.Push(l.Clone())
	change()
	return write(l, w)
}

func write(l *task.List, w persist.Writer) error {
	if err := w.Write(l); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}
	return nil
}

// Add appends a task that was fully built by the parser.
type Add struct {
	Task task.Task
}

func (c Add) Execute(l *task.List, h *history.History, w persist.Writer) (string, error) {
	t := c.Task.Copy()
	err := mutate(l, h, w, func() { l.Add(t) })
	return "GOT IT. I'VE ADDED THIS TASK:\n" + t.String() + "\n" + countLine(l), err
}

func (Add) IsExit() bool { return false }

// Delete removes the task at a 0-based index.
type Delete struct {
	Index int
}

func (c Delete) Execute(l *task.List, h *history.History, w persist.Writer) (string, error) {
	if !l.IsValidIndex(c.Index) {
		return "", fmt.Errorf("%w: no task %d", ErrInvalidIndex, c.Index+1)
	}
	var removed task.Task
	err := mutate(l, h, w, func() {
		removed, _ = l.Remove(c.Index)
	})
	return "TASK REMOVED:\n" + removed.String() + "\n" + countLine(l), err
}

func (Delete) IsExit() bool { return false }

// Mark sets or clears the done flag of the task at a 0-based index.
type Mark struct {
	Index int
	Done  bool
}

func (c Mark) Execute(l *task.List, h *history.History, w persist.Writer) (string, error) {
	if !l.IsValidIndex(c.Index) {
		return "", fmt.Errorf("%w: no task %d", ErrInvalidIndex, c.Index+1)
	}
	var t task.Task
	err := mutate(l, h, w, func() {
		t, _ = l.Get(c.Index)
		if c.Done {
			t.MarkAsDone()
		} else {
			t.MarkAsUndone()
		}
	})
	header := "TASK MARKED AS DONE:\n"
	if !c.Done {
		header = "TASK MARKED AS NOT DONE:\n"
	}
	return header + t.String(), err
}

func (Mark) IsExit() bool { return false }

// Clear empties the list. A snapshot is recorded even when it is already empty.
type Clear struct{}

func (Clear) Execute(l *task.List, h *history.History, w persist.Writer) (string, error) {
	err := mutate(l, h, w, l.Clear)
	return "ALL TASKS CLEARED. " + countLine(l), err
}

func (Clear) IsExit() bool { return false }

type List struct{}

func (List) Execute(l *task.List, _ *history.History, _ persist.Writer) (string, error) {
	if l.Size() == 0 {
		return "NO TASKS IN LIST.", nil
	}
	var b strings.Builder
	b.WriteString("HERE ARE YOUR TASKS:")
	for i, t := range l.Tasks() {
		b.WriteString("\n" + strconv.Itoa(i+1) + ". " + t.String())
	}
	return b.String(), nil
}

func (List) IsExit() bool { return false }

// Find lists the tasks matching any of Terms, numbered by their position in
// the full list.
type Find struct {
	Terms []string
}

func (c Find) Execute(l *task.List, _ *history.History, _ persist.Writer) (string, error) {
	found := l.Find(c.Terms...)
	if len(found) == 0 {
		return "NO MATCHING TASKS FOUND.", nil
	}
	var b strings.Builder
	b.WriteString("HERE ARE THE MATCHING TASKS:")
	for _, f := range found {
		b.WriteString("\n" + strconv.Itoa(f.Index+1) + ". " + f.Task.String())
	}
	return b.String(), nil
}

func (Find) IsExit() bool { return false }

// Undo restores the list to the most recent snapshot.
type Undo struct{}

func (Undo) Execute(l *task.List, h *history.History, w persist.Writer) (string, error) {
	snapshot, err := h.Pop()
	if errors.Is(err, history.ErrEmpty) {
		return "", ErrNothingToUndo
	}
	if err != nil {
		return "", err
	}
	l.CopyFrom(snapshot)
	return "UNDO SUCCESSFUL. " + countLine(l), write(l, w)
}

func (Undo) IsExit() bool { return false }

type Exit struct{}

func (Exit) Execute(*task.List, *history.History, persist.Writer) (string, error) {
	return "BYE. HOPE TO SEE YOU AGAIN SOON!", nil
}

func (Exit) IsExit() bool { return true }
