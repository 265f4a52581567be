package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/td0m/taskline/internal/app"
)

var (
	_ app.Renderer = &Plain{}
	_ app.Renderer = &Styled{}
	_ app.Renderer = &Transcript{}
)

// Plain writes replies as they are, one per line.
type Plain struct {
	w io.Writer
}

func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Show(msg string)      { fmt.Fprintln(p.w, msg) }
func (p *Plain) ShowError(msg string) { fmt.Fprintln(p.w, msg) }

// Styled writes replies through Format and errors in red.
type Styled struct {
	w io.Writer
}

func NewStyled(w io.Writer) *Styled {
	return &Styled{w: w}
}

func (s *Styled) Show(msg string)      { fmt.Fprintln(s.w, Format(msg)) }
func (s *Styled) ShowError(msg string) { fmt.Fprintln(s.w, ErrorText.Render(msg)) }

// NewRenderer picks Styled or Plain.
func NewRenderer(w io.Writer, color bool) app.Renderer {
	if color {
		return NewStyled(w)
	}
	return NewPlain(w)
}

// Transcript collects a styled conversation for the full-screen REPL.
type Transcript struct {
	b strings.Builder
}

func (t *Transcript) Echo(line string) { t.add(Prompt.Render("> " + line)) }
func (t *Transcript) Show(msg string)  { t.add(Format(msg)) }
func (t *Transcript) ShowError(msg string) {
	t.add(ErrorText.Render(msg))
}

func (t *Transcript) add(s string) {
	if t.b.Len() > 0 {
		t.b.WriteString("\n")
	}
	t.b.WriteString(s)
}

func (t *Transcript) String() string {
	return t.b.String()
}
