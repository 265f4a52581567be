package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/td0m/taskline/internal/app"
	"github.com/td0m/taskline/pkg/dateinput"
	"github.com/td0m/taskline/pkg/task"
)

const (
	headerHeight = 3
	footerHeight = 1
)

// Session is what the REPL drives.
type Session interface {
	Handle(line string) app.Reply
	Tasks() []task.Task
}

// REPL is a full-screen bubbletea model: a scrolling transcript above a
// single-line prompt.
type REPL struct {
	session    Session
	input      textinput.Model
	viewport   viewport.Model
	bar        Bar
	dates      dateinput.Model
	transcript *Transcript

	quitting bool
}

func NewREPL(s Session, title string) REPL {
	i := textinput.New()
	i.Prompt = "> "
	i.Placeholder = "todo read book"
	i.Focus()

	m := REPL{
		session:    s,
		input:      i,
		viewport:   viewport.New(0, 0),
		bar:        NewBar(title),
		transcript: &Transcript{},
	}
	m.refresh()
	return m
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m REPL) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m REPL) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 0)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.bar, _ = m.bar.Update(msg)
		m.viewport.GotoBottom()
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp:
			m.viewport.HalfViewUp()
		case tea.KeyPgDown:
			m.viewport.HalfViewDown()
		default:
			m.input, cmd = m.input.Update(msg)
			m.dates = m.dates.Update(m.input.Value())
		}
	default:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m REPL) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.dates = dateinput.Model{}

	m.transcript.Echo(line)
	reply := m.session.Handle(line)
	reply.Render(m.transcript)
	m.refresh()

	if reply.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *REPL) refresh() {
	m.viewport.SetContent(m.transcript.String())
	m.viewport.GotoBottom()

	tasks := m.session.Tasks()
	done := 0
	for _, t := range tasks {
		if t.Marked() {
			done++
		}
	}
	m.bar.Info = strconv.Itoa(len(tasks)) + " task(s), " + strconv.Itoa(done) + " done"
}

// Quitting reports whether the last update ended the program.
func (m REPL) Quitting() bool {
	return m.quitting
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m REPL) View() string {
	if m.quitting {
		return ""
	}
	return m.bar.View() + m.viewport.View() + "\n" + m.input.View() + m.dates.View()
}
