package assessment

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/results"
	"github.com/abhisek/triage/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEnv(t *testing.T) (*screen.Env, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "triage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return &screen.Env{
		Catalog:  catalog.Default(),
		Language: catalog.English,
		Results:  st.Results(),
	}, st
}

// answerScaleSection answers every question of the current section with v
// and presses Enter.
func answerScaleSection(t *testing.T, s *AssessmentScreen, v rune) {
	t.Helper()
	for range s.ctrl.Current().Questions {
		s.Update(keyPress(v))
		s.Update(specialKey(tea.KeyDown))
	}
	s.Update(specialKey(tea.KeyEnter))
}

func TestEnterOnIntroAdvances(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)
	require.Equal(t, 0, s.ctrl.Index())

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, s.ctrl.Index())
}

func TestIncompleteSectionShowsStatus(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)
	s.Update(specialKey(tea.KeyEnter))

	s.Update(keyPress('3'))
	s.Update(specialKey(tea.KeyEnter))

	assert.Equal(t, 1, s.ctrl.Index())
	assert.Equal(t, incompleteStatus, s.status)
}

func TestArrowKeysAdjustScale(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)
	s.Update(specialKey(tea.KeyEnter))
	id := s.ctrl.Current().Questions[0].ID

	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 1, s.raw[id])
	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 2, s.raw[id])
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 1, s.raw[id], "clamped at the scale minimum")

	s.Update(keyPress('0'))
	assert.Equal(t, 10, s.raw[id])
}

func TestBackspaceGoesBack(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyBackspace))
	assert.Equal(t, 0, s.ctrl.Index())
}

func advanceToEmergency(t *testing.T, s *AssessmentScreen) {
	t.Helper()
	s.Update(specialKey(tea.KeyEnter))
	for s.ctrl.Current().Kind == catalog.SectionQuestions {
		answerScaleSection(t, s, '5')
	}
	require.Equal(t, catalog.SectionEmergency, s.ctrl.Current().Kind)
}

func TestCrisisOverlay(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)
	advanceToEmergency(t, s)

	s.Update(keyPress('y'))
	s.Update(keyPress('n'))
	s.Update(specialKey(tea.KeyEnter))

	require.True(t, s.ctrl.InOverlay())
	assert.True(t, s.InterceptsBack())
	assert.Contains(t, s.View(100, 40), "741741")

	s.Update(keyPress('b'))
	assert.False(t, s.ctrl.InOverlay())
	assert.Equal(t, catalog.SectionEmergency, s.ctrl.Current().Kind)

	s.Update(specialKey(tea.KeyEnter))
	require.True(t, s.ctrl.InOverlay())
	s.Update(keyPress('c'))
	assert.Equal(t, catalog.SectionCompletion, s.ctrl.Current().Kind)
}

func TestFinishRecordsAndShowsResults(t *testing.T) {
	env, st := testEnv(t)
	s := New(env)
	advanceToEmergency(t, s)

	s.Update(keyPress('n'))
	s.Update(keyPress('n'))
	s.Update(specialKey(tea.KeyEnter))
	require.Equal(t, catalog.SectionCompletion, s.ctrl.Current().Kind)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	_, ok = msg.Screen.(*results.ResultsScreen)
	assert.True(t, ok)

	assert.Equal(t, 0, s.ctrl.Index(), "controller resets after finishing")
	assert.Empty(t, s.raw)

	rec, err := st.Results().LatestAssessment(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 6, rec.Results.Overall)
	assert.False(t, rec.CrisisDetected)
}

func TestKeyHints(t *testing.T) {
	env, _ := testEnv(t)
	s := New(env)
	hints := s.KeyHints()
	var keys []string
	for _, h := range hints {
		keys = append(keys, h.Key)
	}
	assert.Equal(t, "Enter Esc", strings.Join(keys, " "))
}
