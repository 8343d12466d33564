package symptom

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triage/internal/answers"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/scoring"
)

type memorySink struct {
	runs []Run
	err  error
}

func (m *memorySink) RecordSymptomRun(_ context.Context, run Run) error {
	m.runs = append(m.runs, run)
	return m.err
}

func newController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c, err := New(catalog.Default(), catalog.English, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_UnknownLanguage(t *testing.T) {
	_, err := New(catalog.Default(), "klingon")
	assert.ErrorIs(t, err, catalog.ErrUnknownLanguage)
}

func TestSelectCategory_DefaultsToMinimum(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.SelectCategory("skin"))
	assert.Equal(t, scoring.Fill(1), c.Answers())

	cat, ok := c.Category()
	require.True(t, ok)
	assert.Equal(t, "Skin", cat.Label)
}

func TestSelectCategory_CustomDefault(t *testing.T) {
	c := newController(t, WithDefaultAnswer(5))
	require.NoError(t, c.SelectCategory("skin"))
	assert.Equal(t, scoring.Fill(5), c.Answers())

	ignored := newController(t, WithDefaultAnswer(0))
	require.NoError(t, ignored.SelectCategory("skin"))
	assert.Equal(t, scoring.Fill(DefaultAnswer), ignored.Answers())
}

func TestSelectCategory_Unknown(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.SelectCategory("head"))

	err := c.SelectCategory("elbow")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	cat, _ := c.Category()
	assert.Equal(t, "head", cat.Key, "failed selection should keep the previous category")
}

func TestCompute_AcneExample(t *testing.T) {
	c := newController(t, WithDefaultAnswer(5))
	require.NoError(t, c.SelectCategory("skin"))

	results, err := c.Compute(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	acne := results[0]
	assert.Equal(t, "acne", acne.Condition)
	assert.Equal(t, "Acne", acne.Label)
	assert.Equal(t, 30, acne.Score)
	assert.Equal(t, scoring.Mild, acne.Severity)
}

func TestCompute_DeclarationOrder(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.SelectCategory("chest"))
	results, err := c.Compute(context.Background())
	require.NoError(t, err)

	var names []string
	for _, r := range results {
		names = append(names, r.Condition)
	}
	assert.Equal(t, []string{"asthma", "bronchitis", "pneumonia", "heart_strain"}, names)
	assert.True(t, c.AllUnlikely(), "minimum answers should score every condition unlikely")
}

func TestCompute_RequiresCategory(t *testing.T) {
	c := newController(t)
	_, err := c.Compute(context.Background())
	assert.ErrorIs(t, err, ErrNoCategory)
	assert.ErrorIs(t, c.SetAnswer(0, 5), ErrNoCategory)
	assert.False(t, c.AllUnlikely())
}

func TestSetAnswer_Range(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.SelectCategory("stomach"))

	tests := []struct {
		name         string
		index, value int
	}{
		{"negative index", -1, 5},
		{"index past end", 10, 5},
		{"value zero", 0, 0},
		{"value eleven", 9, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var re *answers.RangeError
			assert.True(t, errors.As(c.SetAnswer(tt.index, tt.value), &re))
		})
	}
	assert.Equal(t, scoring.Fill(1), c.Answers(), "rejected writes must not change answers")

	require.NoError(t, c.SetAnswer(9, 10))
	assert.Equal(t, 10, c.Answers()[9])
}

func TestCategoryChangeResetsAnswersAndResults(t *testing.T) {
	c := newController(t)
	require.NoError(t, c.SelectCategory("skin"))
	for i := range catalog.QuestionsPerCategory {
		require.NoError(t, c.SetAnswer(i, 10))
	}
	_, err := c.Compute(context.Background())
	require.NoError(t, err)
	require.False(t, c.AllUnlikely())

	require.NoError(t, c.SelectCategory("head"))
	assert.Nil(t, c.Results())
	assert.Equal(t, scoring.Fill(1), c.Answers())

	results, err := c.Compute(context.Background())
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, scoring.Unlikely, r.Severity, "%s should not reflect the previous category", r.Condition)
	}
}

func TestCompute_EmptyConditions(t *testing.T) {
	def := catalog.SeedDefinition()
	def.Categories[0].Conditions = nil
	p, err := catalog.NewProvider(def)
	require.NoError(t, err)

	c, err := New(p, catalog.English)
	require.NoError(t, err)
	require.NoError(t, c.SelectCategory("skin"))

	results, err := c.Compute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, c.AllUnlikely())
}

func TestCompute_Sink(t *testing.T) {
	sink := &memorySink{}
	c := newController(t, WithSink(sink))
	require.NoError(t, c.SelectCategory("head"))
	require.NoError(t, c.SetAnswer(1, 8))

	_, err := c.Compute(context.Background())
	require.NoError(t, err)
	require.Len(t, sink.runs, 1)

	run := sink.runs[0]
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "head", run.Category)
	assert.Equal(t, 8, run.Answers[1])
	assert.Len(t, run.Results, 4)

	sink.err = errors.New("locked")
	results, err := c.Compute(context.Background())
	assert.Error(t, err)
	assert.Len(t, results, 4)
}
