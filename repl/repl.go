// Package repl implements the interactive calculator.
package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stackcalc/stackcalc/constant"
	"github.com/stackcalc/stackcalc/icon"
	"github.com/stackcalc/stackcalc/key"
	"github.com/stackcalc/stackcalc/log"
	"github.com/stackcalc/stackcalc/rpn"
	"github.com/stackcalc/stackcalc/session"
	"github.com/stackcalc/stackcalc/style"
	"github.com/stackcalc/stackcalc/util"
)

type model struct {
	calc      *rpn.Calculator
	precision int

	keymap keymap
	inputC textinput.Model
	helpC  help.Model

	lastExpr string
	lastErr  error
	width    int
}

func newModel(calc *rpn.Calculator) *model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "1 2 + dup *"
	input.Focus()

	m := &model{
		calc:      calc,
		precision: viper.GetInt(key.RPNPrecision),
		keymap:    newKeymap(),
		inputC:    input,
		helpC:     help.New(),
	}

	if w, _, err := util.TerminalSize(); err == nil {
		m.resize(w)
	}
	return m
}

func (m *model) resize(width int) {
	m.width = width
	m.helpC.Width = width
	m.inputC.Width = width - len(m.inputC.Prompt) - 1
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, m.keymap.quit):
			return m, tea.Quit
		case bubblesKey.Matches(msg, m.keymap.eval):
			m.eval()
			return m, nil
		case bubblesKey.Matches(msg, m.keymap.clearStack):
			m.calc.Stack().Clear()
			m.lastExpr, m.lastErr = "", nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputC, cmd = m.inputC.Update(msg)
	return m, cmd
}

func (m *model) eval() {
	expr := strings.TrimSpace(m.inputC.Value())
	m.inputC.Reset()
	if expr == "" {
		return
	}

	m.lastExpr = expr
	m.lastErr = m.calc.Eval(expr)
	if m.lastErr != nil {
		log.With(log.Fields{"expression": expr}).Warn(m.lastErr)
	}
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(style.Title(constant.Stackcalc))
	b.WriteString("  ")
	b.WriteString(RenderStatus(m.calc.Stack()))
	b.WriteString("\n\n")
	b.WriteString(RenderStack(m.calc.Stack(), m.precision))
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(style.Fg(style.ErrorColor)(icon.Get(icon.Fail) + " " + m.lastErr.Error()))
		b.WriteString("\n")
	} else if m.lastExpr != "" {
		b.WriteString(style.Faint(m.lastExpr))
		b.WriteString("\n")
	}

	b.WriteString(m.inputC.View())
	b.WriteString("\n\n")
	b.WriteString(m.helpC.View(m.keymap))
	return b.String()
}

// Run starts the interactive calculator on the session stack and saves it on exit.
func Run() error {
	s, err := session.Load()
	if err != nil {
		return err
	}

	m := newModel(rpn.New(s))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}

	return session.Save(m.calc.Stack())
}
