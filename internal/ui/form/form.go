// Package form arranges several edit boxes into a vertically scrolling
// demo form with tab navigation and a status line.
package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/editline/internal/theme"
	"github.com/unkn0wn-root/editline/internal/ui/editbox"
	"github.com/unkn0wn-root/editline/internal/ui/scroll"
)

// Field pairs a label with its edit box.
type Field struct {
	Label string
	Input editbox.Model
}

// KeyMap holds the form-level bindings. Everything else is routed to the
// focused edit box.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Quit      key.Binding
}

var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+q"),
		key.WithHelp("esc", "quit"),
	),
}

// Model is the Bubble Tea model for the form.
type Model struct {
	Title  string
	KeyMap KeyMap

	fields  []Field
	focused int

	theme  theme.Theme
	width  int
	height int
	offset int

	status string
}

// New builds a form around the given fields. The first field receives
// focus once the program starts.
func New(th theme.Theme, title string, fields []Field) Model {
	m := Model{
		Title:  title,
		KeyMap: DefaultKeyMap,
		fields: fields,
		theme:  th,
	}
	for i := range m.fields {
		in := &m.fields[i].Input
		in.FocusedStyle.Text = th.InputText
		in.FocusedStyle.Placeholder = th.InputPlaceholder
		in.FocusedStyle.Selection = th.InputSelection
		in.FocusedStyle.Suffix = th.InputSuffix
		in.FocusedStyle.Prompt = th.InputPrompt
		in.BlurredStyle.Placeholder = th.InputPlaceholder
		in.BlurredStyle.Suffix = th.InputSuffix
		in.BlurredStyle.Prompt = th.InputPrompt
		in.Blur()
	}
	return m
}

// Init focuses the first field.
func (m Model) Init() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[0].Input.Focus()
}

// Focused returns the index of the focused field.
func (m Model) Focused() int { return m.focused }

// Field returns the edit box at index i so tests and hosts can inspect it.
func (m Model) Field(i int) *editbox.Model {
	return &m.fields[i].Input
}

// Status returns the current status line text.
func (m Model) Status() string { return m.status }

// Update is the Bubble Tea update loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := max(msg.Width-m.labelColumn()-4, 10)
		for i := range m.fields {
			m.fields[i].Input.SetWidth(inputWidth)
		}
		return m, nil

	case editbox.SubmitMsg:
		m.status = fmt.Sprintf("%s: %q", m.fields[m.focused].Label, msg.Value)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.NextField):
			return m.focusField(m.focused + 1)
		case key.Matches(msg, m.KeyMap.PrevField):
			return m.focusField(m.focused - 1)
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focused].Input, cmd = m.fields[m.focused].Input.Update(msg)
	return m, cmd
}

// handleMouse maps a terminal-coordinate mouse event onto the field rows.
// The edit boxes expect X relative to their own left edge, so the frame
// padding and the label column are stripped first. A press on another
// visible row moves focus there before the event is delivered.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	msg.X -= m.frameLeft() + m.labelColumn()
	row := m.offset + msg.Y - m.frameTop() - 2 // title and blank line sit above the rows

	var cmds []tea.Cmd
	if msg.Action == tea.MouseActionPress {
		end := min(m.offset+m.visibleRows(), len(m.fields))
		if row < m.offset || row >= end {
			return m, nil
		}
		if row != m.focused {
			m.fields[m.focused].Input.Blur()
			m.focused = row
			cmds = append(cmds, m.fields[m.focused].Input.Focus())
		}
	}

	var cmd tea.Cmd
	m.fields[m.focused].Input, cmd = m.fields[m.focused].Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) frameLeft() int {
	f := m.theme.AppFrame
	return f.GetMarginLeft() + f.GetBorderLeftSize() + f.GetPaddingLeft()
}

func (m Model) frameTop() int {
	f := m.theme.AppFrame
	return f.GetMarginTop() + f.GetBorderTopSize() + f.GetPaddingTop()
}

func (m Model) focusField(next int) (tea.Model, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	if next < 0 {
		next = len(m.fields) - 1
	}
	if next >= len(m.fields) {
		next = 0
	}
	if next == m.focused {
		return m, nil
	}
	m.fields[m.focused].Input.Blur()
	m.focused = next
	m.offset = scroll.Align(m.focused, m.offset, m.visibleRows(), len(m.fields))
	return m, m.fields[m.focused].Input.Focus()
}

func (m Model) visibleRows() int {
	// Title, blank line, status bar and help eat four rows.
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) labelColumn() int {
	widest := 0
	for _, f := range m.fields {
		if w := lipgloss.Width(f.Label); w > widest {
			widest = w
		}
	}
	return widest + 2
}

// View renders the form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.Title))
	b.WriteString("\n\n")

	rows := m.visibleRows()
	end := min(m.offset+rows, len(m.fields))
	labelWidth := m.labelColumn()

	for i := m.offset; i < end; i++ {
		f := m.fields[i]
		label := m.theme.Label
		if i == m.focused {
			label = m.theme.LabelFocused
		}
		b.WriteString(label.Width(labelWidth).Render(f.Label))
		b.WriteString(f.Input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.theme.StatusBar.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render("tab: next field · enter: submit · esc: quit"))
	return m.theme.AppFrame.Render(b.String())
}
