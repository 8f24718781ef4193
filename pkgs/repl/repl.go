// Package repl implements the interactive read-eval-print loop: a
// bubbletea program wrapping a bubbles/textinput line editor with history
// recall, plus a plain-scanner fallback for when stdin is not a terminal
// (prompt suppressed, Ctrl-C/up-down history disabled — a plain read
// loop over stdin).
package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aledsdavies/malgo/pkgs/env"
	"github.com/aledsdavies/malgo/pkgs/errors"
	"github.com/aledsdavies/malgo/pkgs/eval"
	"github.com/aledsdavies/malgo/pkgs/printer"
	"github.com/aledsdavies/malgo/pkgs/reader"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Model is the bubbletea model driving the interactive REPL: a text input
// for the current line, plus the recall history and the environment each
// submitted form is evaluated against.
type Model struct {
	input       textinput.Model
	env         *env.Environment
	history     []string
	historyPath string
	cursor      int
	noColor     bool
	quitting    bool
}

// NewModel builds the initial REPL model, loading history from path if it
// exists.
func NewModel(e *env.Environment, historyPath string, noColor bool) Model {
	ti := textinput.New()
	ti.Prompt = "user> "
	ti.Focus()

	hist := loadHistory(historyPath)
	return Model{
		input:       ti,
		env:         e,
		history:     hist,
		historyPath: historyPath,
		cursor:      len(hist),
		noColor:     noColor,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC:
		m.input.SetValue("")
		m.cursor = len(m.history)
		return m, nil

	case tea.KeyCtrlD:
		m.quitting = true
		_ = saveHistory(m.historyPath, m.history)
		return m, tea.Quit

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.input.SetValue(m.history[m.cursor])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.history)-1 {
			m.cursor++
			m.input.SetValue(m.history[m.cursor])
		} else {
			m.cursor = len(m.history)
			m.input.SetValue("")
		}
		m.input.CursorEnd()
		return m, nil

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.SetValue("")
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		m.history = append(m.history, line)
		m.cursor = len(m.history)
		out := m.rep(line)
		if out == "" {
			return m, nil
		}
		return m, tea.Println(out)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View()
}

// rep reads, evaluates and renders one line, returning the text to print
// above the prompt. A blank read (comment-only input) prints nothing; an
// evaluation error is styled and prefixed like the top-level driver does.
func (m Model) rep(line string) string {
	form, err := reader.ReadStr(line)
	if err != nil {
		return m.renderError(err)
	}
	if form == nil {
		return ""
	}
	v, err := eval.Eval(form, m.env)
	if err != nil {
		return m.renderError(err)
	}
	return printer.PrStr(v, true)
}

func (m Model) renderError(err error) string {
	msg := FormatError(err)
	if m.noColor {
		return msg
	}
	return errorStyle.Render(msg)
}

// FormatError renders an evaluation error the way both the REPL and the
// file driver report uncaught errors: UserThrow prints its carried value
// readably, everything else prints its message, both under an "Error: "
// prefix.
func FormatError(err error) string {
	if me, ok := err.(*errors.MalError); ok && me.Kind == errors.KindThrow {
		return "Error: " + printer.PrStr(me.Value, true)
	}
	return "Error: " + err.Error()
}

// Run starts the interactive bubbletea REPL program and blocks until the
// user exits with Ctrl-D.
func Run(e *env.Environment, historyPath string, noColor bool) error {
	m := NewModel(e, historyPath, noColor)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

// RunPlain drives a read-eval-print loop without a line editor, for
// sessions where stdin is not a terminal (pipes, redirected files): no
// prompt is printed, and each line is read, evaluated, and its result (or
// error) printed, one per line.
func RunPlain(e *env.Environment, scan func() (string, bool), out func(string)) {
	for {
		line, ok := scan()
		if !ok {
			return
		}
		form, err := reader.ReadStr(line)
		if err != nil {
			out(FormatError(err))
			continue
		}
		if form == nil {
			continue
		}
		v, err := eval.Eval(form, e)
		if err != nil {
			out(FormatError(err))
			continue
		}
		out(printer.PrStr(v, true))
	}
}
