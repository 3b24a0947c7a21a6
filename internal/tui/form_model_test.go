package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m FormModel, text string) FormModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(FormModel)
}

func press(t *testing.T, m tea.Model, key tea.KeyType) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(tea.KeyMsg{Type: key})
}

func testForm(submit func(context.Context, map[string]string) (string, error)) Form {
	return Form{
		Title: "Test",
		Fields: []Field{
			{Key: "id", Label: "Member id", Required: true, Check: checkID},
			{Key: "note", Label: "Note"},
		},
		Submit: submit,
	}
}

func staticShimmer() *Shimmer {
	return NewShimmer(ShimmerConfig{SpeedMs: 100, WidthRatio: 0.25, CycleMs: 1800})
}

func TestFormRequiresFieldsAndRunsChecks(t *testing.T) {
	m := NewFormModel(context.Background(), testForm(nil), staticShimmer())

	updated, _ := press(t, m, tea.KeyEnter)
	m = updated.(FormModel)
	assert.Equal(t, 0, m.step)
	assert.Equal(t, "Member id is required", m.validationErr)

	m = typeText(t, m, "abc")
	updated, _ = press(t, m, tea.KeyEnter)
	m = updated.(FormModel)
	assert.Equal(t, 0, m.step)
	assert.Contains(t, m.validationErr, "invalid id")
	assert.Contains(t, m.View(), "invalid id")
}

func TestFormSubmitsValues(t *testing.T) {
	var got map[string]string
	form := testForm(func(_ context.Context, v map[string]string) (string, error) {
		got = v
		return "saved", nil
	})
	m := NewFormModel(context.Background(), form, staticShimmer())

	m = typeText(t, m, "7")
	updated, _ := press(t, m, tea.KeyEnter)
	m = updated.(FormModel)
	require.Equal(t, 1, m.step)

	// Optional note skipped
	updated, _ = press(t, m, tea.KeyEnter)
	m = updated.(FormModel)
	require.Equal(t, m.saveStep(), m.step)

	updated, cmd := press(t, m, tea.KeyEnter)
	m = updated.(FormModel)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	updated, _ = m.Update(cmd())
	m = updated.(FormModel)
	assert.True(t, m.done)
	assert.Equal(t, map[string]string{"id": "7", "note": ""}, got)
	assert.Contains(t, m.View(), "saved")

	_, cmd = press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, closeFormMsg{}, cmd())
}

func TestFormShowsSubmitError(t *testing.T) {
	m := NewFormModel(context.Background(), testForm(nil), staticShimmer())
	updated, _ := m.Update(submitResultMsg{err: errors.New("trainer already has a session during this time")})
	m = updated.(FormModel)

	assert.True(t, m.done)
	assert.Contains(t, m.View(), "trainer already has a session during this time")
}

func TestFormEscCloses(t *testing.T) {
	m := NewFormModel(context.Background(), testForm(nil), staticShimmer())
	_, cmd := press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, closeFormMsg{}, cmd())
}
