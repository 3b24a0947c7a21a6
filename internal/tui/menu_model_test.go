package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() MenuModel {
	m := NewMenuModel(context.Background(), []MenuOption{
		{"First", func() Form { return testForm(nil) }},
		{"Second", func() Form { return testForm(nil) }},
		{"Exit", nil},
	})
	m.shimmer = staticShimmer()
	return m
}

func TestMenuNavigationAndForms(t *testing.T) {
	m := testMenu()

	updated, _ := press(t, m, tea.KeyDown)
	m = updated.(MenuModel)
	assert.Equal(t, 1, m.cursor)

	updated, _ = press(t, m, tea.KeyEnter)
	m = updated.(MenuModel)
	require.NotNil(t, m.form)
	assert.Contains(t, m.View(), "Member id")

	updated, _ = m.Update(closeFormMsg{})
	m = updated.(MenuModel)
	assert.Nil(t, m.form)
	assert.Contains(t, m.View(), "2. Second")
}

func TestMenuNumberKeys(t *testing.T) {
	m := testMenu()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	m = updated.(MenuModel)
	require.NotNil(t, m.form)
	assert.Equal(t, 0, m.cursor)

	m.form = nil
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	m = updated.(MenuModel)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	// Out of range numbers are ignored
	m = testMenu()
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("8")})
	m = updated.(MenuModel)
	assert.Nil(t, m.form)
	assert.False(t, m.quitting)
}

func TestMainMenuMatchesNumberedOptions(t *testing.T) {
	options := MainMenu(nil, nil)
	require.Len(t, options, 9)
	assert.Equal(t, "Book PT session", options[3].Label)
	assert.Nil(t, options[8].Form)
	for _, opt := range options[:8] {
		form := opt.Form()
		assert.NotEmpty(t, form.Fields, opt.Label)
		assert.NotNil(t, form.Submit, opt.Label)
	}
}
