package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/formdata/multipart"
	"github.com/wippyai/formdata/sink/wire"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateFieldList modelState = iota
	stateInputField
	stateShowBody
)

const (
	inputName = iota
	inputValue
	inputMime
	inputFileName
	inputCount
)

type interactiveModel struct {
	err      error
	form     multipart.Form
	boundary string
	preview  string
	inputs   []textinput.Model
	focusIdx int
	state    modelState
}

func newInteractiveModel(boundary string) *interactiveModel {
	return &interactiveModel{
		form:     multipart.New(),
		boundary: boundary,
		state:    stateFieldList,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputField {
				return m, tea.Quit
			}

		case "a":
			if m.state == stateFieldList {
				m.prepareInputs()
				m.state = stateInputField
				return m, nil
			}

		case "p":
			if m.state == stateFieldList {
				m.renderPreview()
				m.state = stateShowBody
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateInputField:
				if err := m.addField(); err != nil {
					m.err = err
				} else {
					m.err = nil
					m.state = stateFieldList
				}
				return m, nil
			case stateShowBody:
				m.state = stateFieldList
				m.preview = ""
				return m, nil
			}

		case "tab":
			if m.state == stateInputField {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputField:
				m.state = stateFieldList
				m.inputs = nil
				m.err = nil
			case stateShowBody:
				m.state = stateFieldList
				m.preview = ""
			}
			return m, nil
		}
	}

	if m.state == stateInputField {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	prompts := []string{"name: ", "value: ", "media type: ", "file name: "}
	placeholders := []string{"field", "text value", "optional", "optional"}

	m.inputs = make([]textinput.Model, inputCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = prompts[i]
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) addField() error {
	name := m.inputs[inputName].Value()
	if name == "" {
		return fmt.Errorf("field name is required")
	}

	part := multipart.Text(m.inputs[inputValue].Value())
	if mt := m.inputs[inputMime].Value(); mt != "" {
		var err error
		if part, err = part.WithMediaTypeString(mt); err != nil {
			return err
		}
	}
	if fn := m.inputs[inputFileName].Value(); fn != "" {
		part = part.WithFileName(fn)
	}

	m.form = m.form.Part(name, part)
	m.inputs = nil
	return nil
}

func (m *interactiveModel) renderPreview() {
	s, err := multipart.Encode(m.form, &wire.Factory{Boundary: m.boundary})
	if err != nil {
		m.err = err
		return
	}
	ws := s.(*wire.Sink)
	body, err := ws.Body()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.preview = fmt.Sprintf("Content-Type: %s\n\n%s", ws.FormDataContentType(), body)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Form Builder"))
	b.WriteString("\n\n")

	switch m.state {
	case stateFieldList:
		if m.form.IsEmpty() {
			b.WriteString("No fields yet.\n")
		} else {
			for _, f := range m.form.Fields() {
				b.WriteString(fieldStyle.Render(f.Name))
				b.WriteString(" ")
				b.WriteString(typeStyle.Render(f.Part.String()))
				b.WriteString("\n")
			}
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("a add field • p preview body • q quit"))

	case stateInputField:
		b.WriteString("Add a field:\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter add • esc back"))

	case stateShowBody:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.preview))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

func runInteractive(boundary string) error {
	p := tea.NewProgram(newInteractiveModel(boundary), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
