package task

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/td0m/taskline/pkg/task/date"
)

var (
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrLineBreak        = errors.New("task description cannot contain line breaks")
	ErrMalformedData    = errors.New("malformed task data")
)

// Kind is the tag that identifies a task variant in stored data.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// Task is implemented by Todo, Deadline and Event.
type Task interface {
	Kind() Kind
	Description() string
	Marked() bool

	MarkAsDone()
	MarkAsUndone()

	// Data is the lossless line written to the task file.
	Data() string
	// String is the human readable form, never parsed back.
	String() string
	// Copy returns a duplicate that shares no mutable state with the receiver.
	Copy() Task
}

var (
	_ Task = &Todo{}
	_ Task = &Deadline{}
	_ Task = &Event{}
)

const separator = " | "

type base struct {
	description string
	marked      bool
}

func newBase(description string) (base, error) {
	if description == "" {
		return base{}, ErrEmptyDescription
	}
	// one task per line in the task file
	if strings.ContainsAny(description, "\r\n") {
		return base{}, ErrLineBreak
	}
	return base{description: description}, nil
}

func (b *base) Description() string { return b.description }
func (b *base) Marked() bool        { return b.marked }
func (b *base) MarkAsDone()         { b.marked = true }
func (b *base) MarkAsUndone()       { b.marked = false }

func (b *base) data(k Kind) string {
	return string(k) + separator + strconv.FormatBool(b.marked) + separator + b.description
}

func (b *base) display(k Kind) string {
	marker := " "
	if b.marked {
		marker = "X"
	}
	return "[" + string(k) + "][" + marker + "] " + b.description
}

type Todo struct {
	base
}

func NewTodo(description string) (*Todo, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	return &Todo{b}, nil
}

func (t *Todo) Kind() Kind     { return KindTodo }
func (t *Todo) Data() string   { return t.data(KindTodo) }
func (t *Todo) String() string { return t.display(KindTodo) }

func (t *Todo) Copy() Task {
	c := *t
	return &c
}

// Deadline is a task that has to be done by a point in time.
type Deadline struct {
	base
	by time.Time
}

func NewDeadline(description string, by time.Time) (*Deadline, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	return &Deadline{base: b, by: date.Normalize(by)}, nil
}

func (d *Deadline) Kind() Kind    { return KindDeadline }
func (d *Deadline) By() time.Time { return d.by }

func (d *Deadline) Data() string {
	return d.data(KindDeadline) + separator + date.FormatData(d.by)
}

func (d *Deadline) String() string {
	return d.display(KindDeadline) + " (by: " + date.FormatDisplay(d.by) + ")"
}

func (d *Deadline) Copy() Task {
	c := *d
	return &c
}

// Event is a task that happens at a point in time.
type Event struct {
	base
	at time.Time
}

func NewEvent(description string, at time.Time) (*Event, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	return &Event{base: b, at: date.Normalize(at)}, nil
}

func (e *Event) Kind() Kind    { return KindEvent }
func (e *Event) At() time.Time { return e.at }

func (e *Event) Data() string {
	return e.data(KindEvent) + separator + date.FormatData(e.at)
}

func (e *Event) String() string {
	return e.display(KindEvent) + " (at: " + date.FormatDisplay(e.at) + ")"
}

func (e *Event) Copy() Task {
	c := *e
	return &c
}

// Equal reports whether two tasks serialize to the same data.
func Equal(a, b Task) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Data() == b.Data()
}
