package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/ui/theme"
)

// ScaleView renders a 1..10 answer row with value as the highlighted cell.
// A value of 0 means unanswered.
func ScaleView(value int, focused bool) string {
	cells := make([]string, 0, catalog.ScaleMax)
	for v := catalog.ScaleMin; v <= catalog.ScaleMax; v++ {
		label := strconv.Itoa(v)
		if len(label) == 1 {
			label = " " + label
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if v == value {
			style = style.Foreground(theme.Text).Background(theme.Primary).Bold(true)
			if !focused {
				style = style.Background(theme.Border)
			}
		}
		cells = append(cells, style.Render(label))
	}
	return strings.Join(cells, " ")
}

// YesNoView renders a boolean answer. value is 1 for yes, 0 for no and -1
// when unanswered.
func YesNoView(value int, focused bool, yes, no string) string {
	render := func(label string, on bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
		if on {
			style = style.Foreground(theme.Text).Background(theme.Primary).Bold(true)
			if !focused {
				style = style.Background(theme.Border)
			}
		}
		return style.Render(label)
	}
	return render(yes, value == 1) + "  " + render(no, value == 0)
}
