package components

import (
	"github.com/abhisek/triage/internal/ui/theme"
)

// Button is a styled key-labelled button. Buttons do not handle input; the
// owning screen maps the key to an action.
type Button struct {
	Key    string
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(key, label string, active bool) Button {
	return Button{
		Key:    key,
		Label:  label,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	label := "[" + b.Key + "] " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
