package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triage/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackInterceptor is implemented by screens that consume Esc themselves
// while they have inner state to unwind. When InterceptsBack is false the
// app pops the screen as usual.
type BackInterceptor interface {
	InterceptsBack() bool
}

// Refresher is implemented by screens that reload data when they become
// active again after the screens above them are popped.
type Refresher interface {
	Refresh() tea.Cmd
}
