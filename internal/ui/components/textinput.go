package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// FilterInput wraps bubbles/textinput as a case-insensitive list filter.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a focused filter input.
func NewFilterInput(placeholder string, charLimit int) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return FilterInput{Model: ti}
}

// Init returns the cursor blink command.
func (f FilterInput) Init() tea.Cmd {
	return f.Model.Focus()
}

// Update forwards messages to the underlying input.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input.
func (f FilterInput) View() string {
	return f.Model.View()
}

// Value returns the raw filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}

// Reset clears the filter text.
func (f *FilterInput) Reset() {
	f.Model.Reset()
}

// Matches reports whether any of fields contains the filter text. An empty
// filter matches everything.
func (f FilterInput) Matches(fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Model.Value()))
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
