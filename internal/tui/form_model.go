package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field is one prompt of a form
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Required    bool
	// Check validates a non-empty value before moving on
	Check func(string) error
}

// Form is a sequence of fields and the action run with their values
type Form struct {
	Title  string
	Fields []Field
	Submit func(ctx context.Context, values map[string]string) (string, error)
}

// submitResultMsg carries the outcome of Form.Submit
type submitResultMsg struct {
	result string
	err    error
}

// closeFormMsg asks the menu to drop the form
type closeFormMsg struct{}

func closeForm() tea.Msg { return closeFormMsg{} }

// FormModel walks the user through a Form one field at a time. The step
// after the last field is the save step.
type FormModel struct {
	ctx     context.Context
	form    Form
	inputs  []textinput.Model
	step    int
	width   int
	shimmer *Shimmer

	validationErr string
	submitting    bool
	done          bool
	result        string
	err           error
}

// NewFormModel creates a form model with the first field focused
func NewFormModel(ctx context.Context, form Form, shimmer *Shimmer) FormModel {
	inputs := make([]textinput.Model, len(form.Fields))
	for i, f := range form.Fields {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].CharLimit = 200
		inputs[i].Placeholder = f.Placeholder
		if !f.Required && f.Placeholder == "" {
			inputs[i].Placeholder = "(Enter to skip)"
		}
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	if shimmer == nil {
		shimmer = NewShimmer(DefaultShimmerConfig())
	}
	return FormModel{ctx: ctx, form: form, inputs: inputs, shimmer: shimmer}
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) saveStep() int {
	return len(m.form.Fields)
}

// Values returns the trimmed input of every field by key
func (m FormModel) Values() map[string]string {
	values := make(map[string]string, len(m.inputs))
	for i, f := range m.form.Fields {
		values[f.Key] = strings.TrimSpace(m.inputs[i].Value())
	}
	return values
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		inputWidth := msg.Width - 20
		if inputWidth < 30 {
			inputWidth = 30
		}
		if inputWidth > 70 {
			inputWidth = 70
		}
		for i := range m.inputs {
			m.inputs[i].Width = inputWidth
		}
		return m, nil

	case submitResultMsg:
		m.submitting = false
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.submitting {
			return m, nil
		}
		if m.done {
			switch msg.String() {
			case "enter", "esc", "q":
				return m, closeForm
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, closeForm
		case "enter":
			return m.handleEnter()
		case "tab", "down":
			if m.step < m.saveStep() && !m.validateCurrent() {
				return m, nil
			}
			return m.nextStep()
		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	// Update the current input (not on the save step)
	var cmd tea.Cmd
	if m.step < m.saveStep() {
		m.inputs[m.step], cmd = m.inputs[m.step].Update(msg)
	}
	return m, cmd
}

// validateCurrent checks the focused field and records the problem
func (m *FormModel) validateCurrent() bool {
	m.validationErr = ""
	field := m.form.Fields[m.step]
	value := strings.TrimSpace(m.inputs[m.step].Value())

	if value == "" {
		if field.Required {
			m.validationErr = field.Label + " is required"
			return false
		}
		return true
	}
	if field.Check != nil {
		if err := field.Check(value); err != nil {
			m.validationErr = err.Error()
			return false
		}
	}
	return true
}

func (m FormModel) handleEnter() (FormModel, tea.Cmd) {
	if m.step < m.saveStep() {
		if !m.validateCurrent() {
			return m, nil
		}
		return m.nextStep()
	}

	// Everything is re-checked before saving, a field may have been skipped with up/down
	for i := range m.form.Fields {
		m.step = i
		if !m.validateCurrent() {
			return m.focus(i)
		}
	}
	m.step = m.saveStep()

	m.submitting = true
	ctx, submit, values := m.ctx, m.form.Submit, m.Values()
	return m, func() tea.Msg {
		result, err := submit(ctx, values)
		return submitResultMsg{result: result, err: err}
	}
}

func (m FormModel) focus(step int) (FormModel, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.step = step
	if step < m.saveStep() {
		m.inputs[step].Focus()
	}
	m.shimmer.Reset()
	return m, textinput.Blink
}

func (m FormModel) nextStep() (FormModel, tea.Cmd) {
	if m.step >= m.saveStep() {
		return m, nil
	}
	return m.focus(m.step + 1)
}

func (m FormModel) prevStep() (FormModel, tea.Cmd) {
	m.validationErr = ""
	if m.step == 0 {
		return m, nil
	}
	return m.focus(m.step - 1)
}

func (m FormModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).MarginBottom(1)
	b.WriteString(titleStyle.Render(m.form.Title))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(m.renderResult())
		b.WriteString("\n\n")
		b.WriteString(helpStyle().Render("Enter/Esc: back to menu"))
		return cardStyle().Render(b.String())
	}

	done := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	skipped := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	future := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, f := range m.form.Fields {
		value := strings.TrimSpace(m.inputs[i].Value())
		switch {
		case i == m.step:
			b.WriteString("▶ " + m.shimmer.Render(f.Label) + "\n")
			b.WriteString("  " + m.inputs[i].View() + "\n")
		case i < m.step && value != "":
			b.WriteString(done.Render(fmt.Sprintf("✓ %s: %s", f.Label, value)) + "\n")
		case i < m.step:
			b.WriteString(skipped.Render("– "+f.Label) + "\n")
		default:
			b.WriteString(future.Render("  "+f.Label) + "\n")
		}
	}

	b.WriteString("\n")
	if m.step == m.saveStep() {
		label := "💾 Save"
		if m.submitting {
			label = "💾 Saving..."
		}
		b.WriteString("▶ " + m.shimmer.Render(label) + "\n")
	} else {
		b.WriteString(future.Render("  💾 Save") + "\n")
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("⚠ " + m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle().Render("Enter: next/save • ↑/↓: move • Esc: back to menu"))
	return cardStyle().Render(b.String())
}

func (m FormModel) renderResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("❌ Error: " + m.err.Error())
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(m.result)
}

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
}
