package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/ui/theme"
)

// OptionList renders a list of answer options with a cursor. It only
// tracks the cursor; the caller owns what is selected.
type OptionList struct {
	Options []string
	Multi   bool
	Cursor  int
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []string, multi bool) OptionList {
	return OptionList{Options: options, Multi: multi}
}

// Update moves the cursor on up/down keys.
func (o OptionList) Update(msg tea.Msg) OptionList {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o
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
	return o
}

// Current returns the option under the cursor, or "" for an empty list.
func (o OptionList) Current() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return o.Options[o.Cursor]
}

// View renders the options, marking those for which selected returns true.
func (o OptionList) View(selected func(option string) bool) string {
	var b strings.Builder
	for i, opt := range o.Options {
		mark := o.mark(selected(opt))
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		line := prefix + mark + " " + opt

		style := theme.Unselected
		switch {
		case i == o.Cursor:
			style = theme.Selected
		case selected(opt):
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (o OptionList) mark(on bool) string {
	switch {
	case o.Multi && on:
		return "[x]"
	case o.Multi:
		return "[ ]"
	case on:
		return "(•)"
	default:
		return "( )"
	}
}
