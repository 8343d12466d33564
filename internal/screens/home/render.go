package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/screens/welcome"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/ui/theme"
)

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

func renderTitle(cw int, compact bool) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(compact))
}

// renderLatest summarises the most recent assessment in a bordered box.
func renderLatest(latest *store.AssessmentRecord, cw int) string {
	var text string
	if latest == nil {
		text = lipgloss.NewStyle().Foreground(theme.TextDim).Render("No mental health check recorded yet")
	} else {
		overall := latest.Results.Overall
		text = fmt.Sprintf("Last check %s   %s",
			latest.CompletedAt.Format("Jan 02"),
			lipgloss.NewStyle().Bold(true).Foreground(theme.ConcernColor(10-overall)).
				Render(fmt.Sprintf("wellbeing %d/10", overall)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Background(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

func renderDisclaimer(cw int) string {
	return theme.Hint.Width(cw).Align(lipgloss.Center).Render(welcome.Disclaimer)
}

// renderFrame wraps content in a border centred in the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
