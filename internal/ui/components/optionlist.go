package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anuvat/anuvat/internal/ui/theme"
)

// OptionList renders a quiz question's options with a cursor and a
// recorded answer marker. Unlike a reveal-style chooser it never shows
// which option is correct; scoring happens elsewhere, after submission.
type OptionList struct {
	Options  []string
	Cursor   int
	Answered int // recorded answer index, -1 when unanswered
}

// NewOptionList creates an option list with no recorded answer.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options:  options,
		Answered: -1,
	}
}

// Update moves the cursor. Recording the answer is the owner's call,
// on whatever key it maps to selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}
	return o, nil
}

// View renders the options with cursor and answer markers.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	s := ""
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		radio := "○"
		if i == o.Answered {
			radio = "●"
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == o.Cursor {
			prefix = "▸ "
			style = theme.Selected
		}
		if i == o.Answered {
			style = style.Bold(true).Foreground(theme.Secondary)
			if i == o.Cursor {
				style = theme.Selected
			}
		}

		s += style.Render(fmt.Sprintf("%s%s %s)  %s", prefix, radio, label, opt)) + "\n"
	}
	return s
}
