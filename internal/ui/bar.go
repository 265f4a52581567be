package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	barContainer = lipgloss.NewStyle().Padding(1, 1)
	barTitle     = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	barInfo      = lipgloss.NewStyle().Foreground(Secondary)
)

// Bar is the header of the full-screen REPL: a title on the left and a
// status on the right.
type Bar struct {
	Title string
	Info  string
	Width int
}

func NewBar(title string) Bar {
	return Bar{Title: title}
}

// Update tracks the terminal width.
func (m Bar) Update(msg tea.Msg) (Bar, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width = msg.Width
	}
	return m, nil
}

func (m Bar) View() string {
	w := lipgloss.Width
	left := barTitle.Render(m.Title)
	right := barInfo.Render(m.Info)
	space := lipgloss.NewStyle().Width(max(m.Width-2-w(left)-w(right), 1)).Render("")
	return barContainer.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, space, right)) + "\n"
}
