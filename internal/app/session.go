// Package app wires parsing, execution, history and persistence into a
// session that turns input lines into replies.
package app

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/td0m/taskline/pkg/command"
	"github.com/td0m/taskline/pkg/history"
	"github.com/td0m/taskline/pkg/persist"
	"github.com/td0m/taskline/pkg/task"
)

// Reply is the outcome of one line. Text and Error may both be set when a
// change was applied but could not be saved.
type Reply struct {
	Text  string
	Error string
	Exit  bool
}

// Renderer shows replies to the user.
type Renderer interface {
	Show(msg string)
	ShowError(msg string)
}

// Render writes r to to, result first.
func (r Reply) Render(to Renderer) {
	if r.Text != "" {
		to.Show(r.Text)
	}
	if r.Error != "" {
		to.ShowError(r.Error)
	}
}

// Session holds the state of one run. It is not safe for concurrent use.
type Session struct {
	ID string

	list    *task.List
	history *history.History
	store   persist.Persistor
	log     zerolog.Logger
}

// NewSession loads the task list from store.
func NewSession(store persist.Persistor, logger zerolog.Logger) (*Session, error) {
	l, err := store.Read()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	id := uuid.NewString()
	s := &Session{
		ID:      id,
		list:    l,
		history: history.New(),
		store:   store,
		log:     logger.With().Str("session", id).Logger(),
	}
	s.log.Info().Int("tasks", l.Size()).Msg("session started")
	return s, nil
}

// Tasks returns the current tasks in order.
func (s *Session) Tasks() []task.Task {
	return s.list.Tasks()
}

// Handle parses and runs one line. Errors never end the session; only the
// exit command sets Reply.Exit.
func (s *Session) Handle(line string) Reply {
	c, err := command.Parse(line)
	if err != nil {
		s.log.Warn().Err(err).Str("line", line).Msg("rejected input")
		return Reply{Error: command.UserMessage(err)}
	}

	name := command.Name(c)
	s.log.Debug().Str("keyword", name).Bool("mutating", command.IsMutating(c)).Msg("command")

	msg, err := c.Execute(s.list, s.history, s.store)
	reply := Reply{Text: msg, Exit: c.IsExit()}
	switch {
	case err == nil:
	case errors.Is(err, command.ErrPersistenceWrite):
		s.log.Error().Err(err).Str("keyword", name).Msg("write failed")
		reply.Error = command.UserMessage(err)
	default:
		s.log.Warn().Err(err).Str("keyword", name).Msg("command failed")
		reply.Error = command.UserMessage(err)
	}
	if reply.Exit {
		s.log.Info().Int("tasks", s.list.Size()).Msg("session ended")
	}
	return reply
}
