package screen

import (
	"log/slog"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/flow"
	"github.com/abhisek/triage/internal/logging"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/symptom"
)

// Env carries the collaborators screens need to build controllers.
type Env struct {
	Catalog       *catalog.Provider
	Language      catalog.Language
	DefaultAnswer int

	// Results persists finished runs. Nil when history is disabled.
	Results *store.ResultRepo

	Logger *slog.Logger
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return logging.Discard()
	}
	return e.Logger
}

// FlowOptions returns the controller options for the sectional assessment.
func (e *Env) FlowOptions() []flow.Option {
	opts := []flow.Option{
		flow.WithLanguage(e.Language),
		flow.WithLogger(e.logger()),
	}
	if e.Results != nil {
		opts = append(opts, flow.WithSink(e.Results))
	}
	return opts
}

// SymptomOptions returns the controller options for the symptom checker.
func (e *Env) SymptomOptions() []symptom.Option {
	opts := []symptom.Option{
		symptom.WithLogger(e.logger()),
	}
	if e.DefaultAnswer != 0 {
		opts = append(opts, symptom.WithDefaultAnswer(e.DefaultAnswer))
	}
	if e.Results != nil {
		opts = append(opts, symptom.WithSink(e.Results))
	}
	return opts
}

// NewFlow builds a sectional assessment controller in the env's language.
func (e *Env) NewFlow() (*flow.Controller, error) {
	sections, err := e.Catalog.Sections(e.Language)
	if err != nil {
		return nil, err
	}
	return flow.New(sections, e.FlowOptions()...)
}

// NewSymptom builds a symptom checker controller in the env's language.
func (e *Env) NewSymptom() (*symptom.Controller, error) {
	return symptom.New(e.Catalog, e.Language, e.SymptomOptions()...)
}
