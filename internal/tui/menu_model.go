package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuOption is one numbered entry. A nil Form exits the menu.
type MenuOption struct {
	Label string
	Form  func() Form
}

// MenuModel is the numbered main menu. Choosing an option opens its form;
// closing the form returns here.
type MenuModel struct {
	ctx      context.Context
	options  []MenuOption
	cursor   int
	form     *FormModel
	width    int
	height   int
	quitting bool
	shimmer  *Shimmer
}

func NewMenuModel(ctx context.Context, options []MenuOption) MenuModel {
	return MenuModel{
		ctx:     ctx,
		options: options,
		shimmer: NewShimmer(DefaultShimmerConfig()),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return m.shimmer.Tick()
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		return m, m.shimmer.Tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case closeFormMsg:
		m.form = nil
		m.shimmer.Reset()
		return m, nil
	}

	if m.form != nil {
		updated, cmd := m.form.Update(msg)
		form := updated.(FormModel)
		m.form = &form
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.shimmer.Reset()
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
			m.shimmer.Reset()
		}
	case "enter", " ":
		return m.choose(m.cursor)
	default:
		// Number keys pick an option directly, as in the numbered menu
		if len(key.String()) == 1 && key.String() >= "1" && key.String() <= "9" {
			if i := int(key.String()[0] - '1'); i < len(m.options) {
				m.cursor = i
				return m.choose(i)
			}
		}
	}
	return m, nil
}

func (m MenuModel) choose(i int) (tea.Model, tea.Cmd) {
	opt := m.options[i]
	if opt.Form == nil {
		m.quitting = true
		return m, tea.Quit
	}

	form := NewFormModel(m.ctx, opt.Form(), m.shimmer)
	if m.width > 0 {
		updated, _ := form.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		form = updated.(FormModel)
	}
	m.form = &form
	return m, form.Init()
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	logo := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(logo.Render("Health Club Management"))
	b.WriteString("\n\n")

	normal := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	for i, opt := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if i == m.cursor {
			b.WriteString("▶ " + m.shimmer.Render(line) + "\n")
		} else {
			b.WriteString("  " + normal.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle().Render("↑/↓ or 1-9: choose • Enter: open • q: quit"))
	return cardStyle().Render(b.String())
}
