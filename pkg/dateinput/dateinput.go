// Package dateinput shows whether the date argument of a deadline or event
// being typed is valid.
package dateinput

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/td0m/taskline/pkg/task/date"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"})
)

type State int

const (
	// Empty means the line has no date argument.
	Empty State = iota
	// Partial means the argument could still become a valid date.
	Partial
	Valid
	Invalid
)

// Model tracks the date argument of the current input line.
type Model struct {
	state State
	value time.Time
}

// Update re-checks line. It is called with the full input after every key.
func (m Model) Update(line string) Model {
	arg, ok := argument(line)
	switch {
	case !ok || arg == "":
		return Model{state: Empty}
	case isPrefix(arg):
		return Model{state: Partial}
	}
	t, err := date.Parse(arg)
	if err != nil {
		return Model{state: Invalid}
	}
	return Model{state: Valid, value: t}
}

func (m Model) State() State {
	return m.state
}

// Value is the parsed date, if the argument is valid.
func (m Model) Value() (time.Time, bool) {
	return m.value, m.state == Valid
}

func (m Model) View() string {
	switch m.state {
	case Partial:
		return faded.Render(" " + date.Pattern)
	case Valid:
		return checkmark + faded.Render(date.FormatDisplay(m.value))
	case Invalid:
		return cross + faded.Render(date.Pattern)
	default:
		return ""
	}
}
