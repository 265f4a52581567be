package command

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/taskline/pkg/task"
	"github.com/td0m/taskline/pkg/task/date"
)

func TestParse_Keywords(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"bye", Exit{}},
		{"BYE", Exit{}},
		{"list", List{}},
		{"List everything please", List{}},
		{"undo", Undo{}},
		{"clear", Clear{}},
		{"  clear  ", Clear{}},
		{"mark 1", Mark{Index: 0, Done: true}},
		{"MARK 3", Mark{Index: 2, Done: true}},
		{"unmark 2", Mark{Index: 1, Done: false}},
		{"delete 10", Delete{Index: 9}},
		{"delete  4 ", Delete{Index: 3}},
		{"find book", Find{Terms: []string{"book"}}},
		{"find book, paper ,,pen", Find{Terms: []string{"book", "paper", "pen"}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			is := is.New(t)
			got, err := Parse(tt.input)
			is.NoErr(err)
			is.Equal(got, tt.want)
		})
	}
}

func TestParse_Todo(t *testing.T) {
	is := is.New(t)
	c, err := Parse("todo read book")
	is.NoErr(err)
	add, ok := c.(Add)
	is.True(ok)
	is.Equal(add.Task.Kind(), task.KindTodo)
	is.Equal(add.Task.Description(), "read book")
	is.True(!add.Task.Marked())
}

func TestParse_Deadline(t *testing.T) {
	is := is.New(t)
	c, err := Parse("deadline submit /by 31-12-2024 23:59")
	is.NoErr(err)
	add, ok := c.(Add)
	is.True(ok)
	d, ok := add.Task.(*task.Deadline)
	is.True(ok)
	is.Equal(d.Description(), "submit")
	is.True(d.By().Equal(time.Date(2024, time.December, 31, 23, 59, 0, 0, date.Location)))
}

func TestParse_Event(t *testing.T) {
	is := is.New(t)
	c, err := Parse("Event team lunch /at 05-01-2025 12:30")
	is.NoErr(err)
	add, ok := c.(Add)
	is.True(ok)
	e, ok := add.Task.(*task.Event)
	is.True(ok)
	is.Equal(e.Description(), "team lunch")
	is.True(e.At().Equal(time.Date(2025, time.January, 5, 12, 30, 0, 0, date.Location)))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrUnknownCommand},
		{"   ", ErrUnknownCommand},
		{"blah", ErrUnknownCommand},
		{"todos read", ErrUnknownCommand},

		{"todo", ErrMissingArgument},
		{"todo   ", ErrMissingArgument},
		{"mark", ErrMissingArgument},
		{"unmark", ErrMissingArgument},
		{"delete", ErrMissingArgument},
		{"deadline", ErrMissingArgument},
		{"event", ErrMissingArgument},
		{"find", ErrMissingArgument},
		{"find , ,", ErrMissingArgument},
		{"deadline  /by 31-12-2024 23:59", ErrMissingArgument},
		{"deadline   /by 31-12-2024 23:59", ErrMissingArgument},
		{"event \t  /at 31-12-2024 23:59", ErrMissingArgument},

		{"todo a\nb", ErrInvalidDescription},
		{"todo a\rb", ErrInvalidDescription},
		{"deadline a\nb /by 31-12-2024 23:59", ErrInvalidDescription},
		{"event a\r\nb /at 31-12-2024 23:59", ErrInvalidDescription},

		{"mark one", ErrInvalidIndex},
		{"delete 0", ErrInvalidIndex},
		{"unmark -2", ErrInvalidIndex},

		{"deadline submit", ErrMissingTime},
		{"deadline submit /by", ErrMissingTime},
		{"deadline submit /at 31-12-2024 23:59", ErrMissingTime},
		{"event party", ErrMissingTime},

		{"deadline submit /by bad-time", ErrInvalidTimeFormat},
		{"deadline submit /by 2024-12-31 23:59", ErrInvalidTimeFormat},
		{"event party /at 31-12-2024", ErrInvalidTimeFormat},
		{"event party /at 31-12-2024 9:00", ErrInvalidTimeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			is := is.New(t)
			c, err := Parse(tt.input)
			is.True(errors.Is(err, tt.want))
			is.Equal(c, nil) // never partially built
		})
	}
}

func TestUserMessage(t *testing.T) {
	is := is.New(t)

	_, err := Parse("deadline submit /by bad-time")
	is.Equal(UserMessage(err), "INVALID TIME FORMAT (dd-MM-yyyy HH:mm)")
	_, err = Parse("deadline submit")
	is.Equal(UserMessage(err), "NO TIME SUPPLIED")
	_, err = Parse("todo")
	is.Equal(UserMessage(err), "TOO FEW ARGUMENTS SUPPLIED")
	_, err = Parse("hello")
	is.Equal(UserMessage(err), "INVALID COMMAND")
	_, err = Parse("todo first\nsecond")
	is.Equal(UserMessage(err), "DESCRIPTION MUST FIT ON ONE LINE")

	is.Equal(UserMessage(nil), "")
	is.Equal(UserMessage(errors.New("boom")), "SOMETHING WENT WRONG: boom")
}
