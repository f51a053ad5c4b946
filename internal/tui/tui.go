// Package tui is the interactive terminal form: a dimension field, a method
// selector, a compute key and a result area.
//
// Keys:
//
//	tab         switch between the dimension field and the method selector
//	←/→ ↑/↓     change method (selector focused)
//	enter       compute
//	ctrl+o      toggle parenthesization output
//	esc/ctrl+c  quit
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/chainorder/chain"
	"github.com/katalvlaran/chainorder/internal/form"
)

type field int

const (
	fieldDimensions field = iota
	fieldMethod
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	optionStyle   = lipgloss.NewStyle().Padding(0, 1)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	resultBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(48)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model of the form.
type Model struct {
	handler   *form.Handler
	input     textinput.Model
	focus     field
	method    int // index into chain.Methods
	showOrder bool

	result string
	ok     bool
}

// New builds the form with method preselected.
func New(h *form.Handler, method chain.Method, showOrder bool) Model {
	in := textinput.New()
	in.Placeholder = "40, 20, 30, 10, 30"
	in.Prompt = ""
	in.CharLimit = 512
	in.Width = 40
	in.Focus()

	idx := 0
	for i, m := range chain.Methods {
		if m == method {
			idx = i
		}
	}

	return Model{
		handler:   h,
		input:     in,
		method:    idx,
		showOrder: showOrder,
	}
}

// Method returns the selected method.
func (m Model) Method() chain.Method { return chain.Methods[m.method] }

// Result returns the text currently shown in the result area.
func (m Model) Result() string { return m.result }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.compute()
		return m, nil
	case "ctrl+o":
		m.showOrder = !m.showOrder
		return m, nil
	case "tab", "shift+tab":
		return m.toggleFocus()
	}

	if m.focus == fieldMethod {
		switch key.String() {
		case "left", "up", "h", "k":
			m.method = (m.method + len(chain.Methods) - 1) % len(chain.Methods)
		case "right", "down", "l", "j":
			m.method = (m.method + 1) % len(chain.Methods)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == fieldDimensions {
		m.focus = fieldMethod
		m.input.Blur()
		return m, nil
	}
	m.focus = fieldDimensions
	return m, m.input.Focus()
}

func (m *Model) compute() {
	resp := m.handler.Compute(form.Request{
		Dimensions: m.input.Value(),
		Method:     m.Method(),
		ShowOrder:  m.showOrder,
	})
	m.result = resp.Text
	m.ok = resp.OK()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Matrix Chain Multiplication"))
	b.WriteString("\n\n")

	dimLabel, methodLabel := labelStyle.Render("Matrix Dimensions:"), labelStyle.Render("Method:")
	if m.focus == fieldDimensions {
		dimLabel = focusStyle.Inherit(labelStyle).Render("Matrix Dimensions:")
	} else {
		methodLabel = focusStyle.Inherit(labelStyle).Render("Method:")
	}
	b.WriteString(dimLabel + m.input.View() + "\n")

	opts := make([]string, len(chain.Methods))
	for i, meth := range chain.Methods {
		if i == m.method {
			opts[i] = selectedStyle.Render(meth.String())
		} else {
			opts[i] = optionStyle.Render(meth.String())
		}
	}
	b.WriteString(methodLabel + lipgloss.JoinHorizontal(lipgloss.Top, opts...) + "\n\n")

	result := m.result
	switch {
	case result == "":
		result = helpStyle.Render("press enter to compute")
	case m.ok:
		result = okStyle.Render(result)
	default:
		result = errStyle.Render(result)
	}
	b.WriteString(resultBox.Render(result) + "\n")

	order := "off"
	if m.showOrder {
		order = "on"
	}
	b.WriteString(helpStyle.Render("tab switch field • ←/→ method • enter compute • ctrl+o order (" + order + ") • esc quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the form and blocks until the user quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
