package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/ui/theme"
)

// StepProgress shows how far a multi-step flow has come, as a bar plus a
// "step n of m" counter.
type StepProgress struct {
	Label   string
	Current int // zero-based
	Total   int
	Width   int
}

// NewStepProgress creates a progress indicator.
func NewStepProgress(label string, current, total, width int) StepProgress {
	return StepProgress{
		Label:   label,
		Current: current,
		Total:   total,
		Width:   width,
	}
}

// Fraction is current/(total-1), clamped to 0..1.
func (p StepProgress) Fraction() float64 {
	if p.Total < 2 {
		return 1
	}
	f := float64(p.Current) / float64(p.Total-1)
	return min(max(f, 0), 1)
}

// View renders the indicator.
func (p StepProgress) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", p.Current+1, p.Total))

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(counter), 4)
	filled := min(int(float64(barWidth)*p.Fraction()), barWidth)

	result += lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	return result + counter
}
