package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stackcalc/stackcalc/icon"
	"github.com/stackcalc/stackcalc/rpn"
	"github.com/stackcalc/stackcalc/stack"
	"github.com/stackcalc/stackcalc/style"
)

// RenderStack draws the stored values top first, marking the topmost one.
func RenderStack(s *stack.Stack, precision int) string {
	if s.IsEmpty() {
		return style.Fg(style.FaintColor)(icon.Get(icon.Empty) + " empty")
	}

	values := s.Values()
	lines := make([]string, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		label := style.Faint(fmt.Sprintf("%3d", i))
		value := rpn.Format(values[i], precision)

		if i == s.Top() {
			pointer := style.Fg(style.AccentColor)(icon.Get(icon.Pointer))
			lines = append(lines, fmt.Sprintf("%s %s %s", pointer, label, style.Bold(value)))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s %s", label, value))
	}

	return style.New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// RenderStatus summarizes occupancy, flagging a full or empty stack.
func RenderStatus(s *stack.Stack) string {
	occupancy := fmt.Sprintf("%d/%d", s.Len(), s.Cap())

	switch {
	case s.IsFull():
		return style.Fg(style.WarningColor)(icon.Get(icon.Full) + " " + occupancy + " full")
	case s.IsEmpty():
		return style.Fg(style.FaintColor)(icon.Get(icon.Empty) + " " + occupancy + " empty")
	default:
		return style.Fg(style.SuccessColor)(occupancy)
	}
}
