// Package editbox implements a single-line Bubble Tea input widget on top of
// the editcore session: validated input, selection, password masking,
// horizontal cropping, and clipboard helpers.
package editbox

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/runeutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/unkn0wn-root/editline/internal/cells"
	"github.com/unkn0wn-root/editline/internal/editcore"
	"github.com/unkn0wn-root/editline/internal/errdef"
)

const doubleClickWindow = 400 * time.Millisecond

// Internal messages for clipboard operations.
type (
	pasteMsg    string
	pasteErrMsg struct{ error }
)

// SubmitMsg is emitted when the user presses the submit binding while the
// edit box has focus. Value carries the committed text at that moment.
type SubmitMsg struct {
	Value string
}

// Style can be applied to focused and unfocused states to change the look
// depending on the focus state.
type Style struct {
	Base        lipgloss.Style
	Placeholder lipgloss.Style
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Selection   lipgloss.Style
	Suffix      lipgloss.Style
}

func (s Style) computedPlaceholder() lipgloss.Style {
	return s.Placeholder.Inherit(s.Base).Inline(true)
}

func (s Style) computedPrompt() lipgloss.Style {
	return s.Prompt.Inherit(s.Base).Inline(true)
}

func (s Style) computedText() lipgloss.Style {
	return s.Text.Inherit(s.Base).Inline(true)
}

func (s Style) computedSelection() lipgloss.Style {
	return s.Selection.Inherit(s.Base).Inline(true)
}

func (s Style) computedSuffix() lipgloss.Style {
	return s.Suffix.Inherit(s.Base).Inline(true)
}

// DefaultStyles returns the default styles for focused and blurred states of
// the edit box.
func DefaultStyles() (Style, Style) {
	focused := Style{
		Base:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("#4C3F72")),
		Suffix:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
	blurred := focused
	blurred.Text = blurred.Text.Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "7"})
	return focused, blurred
}

// Model is the Bubble Tea model for the edit box.
type Model struct {
	Err error

	// Prompt is printed before the editable text.
	//
	// When changing the value of Prompt after the model has been
	// initialized, ensure that SetWidth() gets called afterwards.
	Prompt string

	// Placeholder is the text displayed when the user
	// hasn't entered anything yet.
	Placeholder string

	// KeyMap encodes the keybindings recognized by the widget.
	KeyMap KeyMap

	// Styling. FocusedStyle and BlurredStyle are used to style the edit box
	// in focused and blurred states.
	FocusedStyle Style
	BlurredStyle Style
	// style is the current styling to use, switched on focus changes.
	style *Style

	// Cursor is the edit box cursor.
	Cursor cursor.Model

	// OnLeave, if set, is called with the current value when the widget
	// loses focus.
	OnLeave func(value string)

	session *editcore.Session

	// width is the number of cells available for the text itself, after the
	// prompt and suffix are accounted for.
	width int

	focus bool

	lastClickAt time.Time
	lastClickX  int

	// rune sanitizer for input.
	rsan runeutil.Sanitizer
}

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(text string) error { return clipboard.WriteAll(text) }

// New creates a new model with default settings.
func New() Model {
	cur := cursor.New()
	focusedStyle, blurredStyle := DefaultStyles()

	session := editcore.NewSession()
	session.SetMetrics(cells.Metrics{})
	session.SetClipboard(systemClipboard{})

	m := Model{
		Prompt:       lipgloss.ThickBorder().Left + " ",
		style:        &blurredStyle,
		FocusedStyle: focusedStyle,
		BlurredStyle: blurredStyle,
		Cursor:       cur,
		KeyMap:       DefaultKeyMap,
		session:      session,
	}

	m.SetWidth(defaultWidth)
	return m
}

const defaultWidth = 40

// Session exposes the underlying edit session for hosts that need to install
// hooks or drive edits programmatically.
func (m *Model) Session() *editcore.Session { return m.session }

// Value returns the committed text.
func (m Model) Value() string { return m.session.Text() }

// SetValue replaces the committed text, subject to the session's limits and
// validation pattern.
func (m *Model) SetValue(value string) { m.session.SetText(value) }

// CaretPosition returns the caret index in runes.
func (m Model) CaretPosition() int { return m.session.Caret() }

// SetCaretPosition collapses the selection and places the caret.
func (m *Model) SetCaretPosition(idx int) { m.session.SetCaretPosition(idx) }

// Select selects length runes starting at start. A negative length selects
// through the end of the text.
func (m *Model) Select(start, length int) { m.session.Select(start, length) }

// SelectedText returns the committed text under the selection, never the
// masked projection.
func (m Model) SelectedText() string { return m.session.SelectedText() }

// SetCharLimit bounds the text length in runes. Zero means unlimited.
func (m *Model) SetCharLimit(limit int) { m.session.SetMaxChars(limit) }

// SetPasswordChar masks the displayed text with the given rune. Zero
// disables masking.
func (m *Model) SetPasswordChar(mask rune) { m.session.SetPasswordChar(mask) }

// SetPattern installs a validation regex that committed text must fully
// match. An invalid pattern is returned as an error and the previous
// pattern stays active.
func (m *Model) SetPattern(pattern string) error {
	return m.session.SetValidatorPattern(pattern)
}

// SetReadOnly toggles read-only mode. Navigation, selection and copy still
// work; edits are ignored.
func (m *Model) SetReadOnly(readOnly bool) { m.session.SetReadOnly(readOnly) }

// SetAlignment controls where short text sits inside the visible window.
func (m *Model) SetAlignment(a editcore.Alignment) { m.session.SetAlignment(a) }

// SetSuffix sets a decoration rendered at the right edge of the box. It is
// not part of the value.
func (m *Model) SetSuffix(suffix string) { m.session.SetSuffix(suffix) }

// SetLimitWidth rejects edits that would make the text wider than the box
// instead of scrolling.
func (m *Model) SetLimitWidth(limit bool) { m.session.SetLimitWidth(limit) }

// Reset sets the input to its default state with no input.
func (m *Model) Reset() { m.session.SetText("") }

// Focused returns the focus state on the model.
func (m Model) Focused() bool { return m.focus }

// Focus sets the focus state on the model. When the model is in focus it can
// receive keyboard input and the cursor will be shown.
func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = &m.FocusedStyle
	return m.Cursor.Focus()
}

// Blur removes the focus state on the model. When the model is blurred it
// can not receive keyboard input and the cursor will be hidden.
func (m *Model) Blur() {
	m.focus = false
	m.style = &m.BlurredStyle
	m.Cursor.Blur()
	if m.OnLeave != nil {
		m.OnLeave(m.session.Text())
	}
}

// Width returns the number of cells available for the text.
func (m Model) Width() int { return m.width }

// SetWidth sets the total width of the edit box in cells. The prompt and
// suffix are subtracted from the editable window.
func (m *Model) SetWidth(w int) {
	prompt := m.promptWidth()
	suffix := 0
	if s := m.session.Suffix(); s != "" {
		suffix = cells.Metrics{}.Width(s)
	}
	m.width = max(w-prompt-suffix, 1)
	m.session.SetVisibleWidth(m.width)
}

func (m Model) promptWidth() int {
	return lipgloss.Width(m.style.computedPrompt().Render(m.Prompt))
}

// san initializes or retrieves the rune sanitizer.
func (m *Model) san() runeutil.Sanitizer {
	if m.rsan == nil {
		// A single-line input, so collapse newlines and tabs to spaces.
		m.rsan = runeutil.NewSanitizer(
			runeutil.ReplaceTabs(" "),
			runeutil.ReplaceNewlines(" "),
		)
	}
	return m.rsan
}

// Update is the Bubble Tea update loop.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focus {
		m.Cursor.Blur()
		return m, nil
	}

	// Used to determine if the cursor should blink.
	oldCaret := m.session.Caret()

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.CharacterBackward):
			m.session.MoveLeft(false)
		case key.Matches(msg, m.KeyMap.CharacterForward):
			m.session.MoveRight(false)
		case key.Matches(msg, m.KeyMap.WordBackward):
			m.session.MoveWordLeft(false)
		case key.Matches(msg, m.KeyMap.WordForward):
			m.session.MoveWordRight(false)
		case key.Matches(msg, m.KeyMap.LineStart):
			m.session.MoveStart(false)
		case key.Matches(msg, m.KeyMap.LineEnd):
			m.session.MoveEnd(false)
		case key.Matches(msg, m.KeyMap.SelectBackward):
			m.session.MoveLeft(true)
		case key.Matches(msg, m.KeyMap.SelectForward):
			m.session.MoveRight(true)
		case key.Matches(msg, m.KeyMap.SelectWordBackward):
			m.session.MoveWordLeft(true)
		case key.Matches(msg, m.KeyMap.SelectWordForward):
			m.session.MoveWordRight(true)
		case key.Matches(msg, m.KeyMap.SelectToStart):
			m.session.MoveStart(true)
		case key.Matches(msg, m.KeyMap.SelectToEnd):
			m.session.MoveEnd(true)
		case key.Matches(msg, m.KeyMap.SelectAll):
			m.session.SelectAll()
		case key.Matches(msg, m.KeyMap.DeleteCharacterBackward):
			m.session.Backspace()
		case key.Matches(msg, m.KeyMap.DeleteCharacterForward):
			m.session.DeleteForward()
		case key.Matches(msg, m.KeyMap.Copy):
			m.session.Copy()
		case key.Matches(msg, m.KeyMap.Cut):
			m.session.Cut()
		case key.Matches(msg, m.KeyMap.Paste):
			return m, Paste
		case key.Matches(msg, m.KeyMap.Submit):
			m.session.Submit()
			value := m.session.Text()
			cmds = append(cmds, func() tea.Msg {
				return SubmitMsg{Value: value}
			})

		default:
			if len(msg.Runes) > 0 {
				run := m.san().Sanitize(msg.Runes)
				if msg.Paste {
					m.session.InsertPasted(string(run))
				} else {
					m.session.InsertString(string(run))
				}
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case pasteMsg:
		m.session.InsertPasted(string(m.san().Sanitize([]rune(msg))))

	case pasteErrMsg:
		m.Err = errdef.Wrap(errdef.CodeClipboard, msg.error, "read clipboard")
	}

	newCaret := m.session.Caret()
	var cmd tea.Cmd
	m.Cursor, cmd = m.Cursor.Update(msg)
	if newCaret != oldCaret && m.Cursor.Mode() == cursor.CursorBlink {
		m.Cursor.Blink = false
		cmd = m.Cursor.BlinkCmd()
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	cellX := msg.X - m.promptWidth()

	switch msg.Action {
	case tea.MouseActionPress:
		now := time.Now()
		if now.Sub(m.lastClickAt) < doubleClickWindow && cellX == m.lastClickX {
			m.session.SelectWordAt(m.session.FindCaretPosition(cellX))
		} else {
			idx := m.session.FindCaretPosition(cellX)
			if msg.Shift {
				m.session.ExtendTo(idx)
			} else {
				m.session.SetCaretPosition(idx)
			}
		}
		m.lastClickAt = now
		m.lastClickX = cellX
	case tea.MouseActionMotion:
		m.session.ExtendTo(m.session.FindCaretPosition(cellX))
	}
}

// View renders the edit box in its current state.
func (m Model) View() string {
	if m.session.Len() == 0 && m.Placeholder != "" {
		return m.placeholderView()
	}

	st := m.style
	var b strings.Builder
	b.WriteString(st.computedPrompt().Render(m.Prompt))

	displayed := m.session.DisplayedRunes()
	crop := m.session.CropPosition()
	visible, visibleWidth := m.visibleRunes(displayed, crop)

	leftPad := 0
	if free := m.width - visibleWidth; free > 0 {
		switch m.session.Alignment() {
		case editcore.AlignCenter:
			leftPad = free / 2
		case editcore.AlignRight:
			leftPad = free
		}
	}
	if leftPad > 0 {
		b.WriteString(st.Base.Render(strings.Repeat(" ", leftPad)))
	}

	lo, hi := m.session.Selection().Bounds()
	caret := m.session.Caret()
	cursorDrawn := false

	for i, r := range visible {
		gi := crop + i
		style := st.computedText()
		if gi >= lo && gi < hi {
			style = st.computedSelection()
		}
		if m.focus && gi == caret {
			m.Cursor.SetChar(string(r))
			b.WriteString(style.Render(m.Cursor.View()))
			cursorDrawn = true
			continue
		}
		b.WriteString(style.Render(string(r)))
	}

	usedWidth := leftPad + visibleWidth
	if m.focus && !cursorDrawn && caret >= crop && caret <= crop+len(visible) {
		m.Cursor.SetChar(" ")
		b.WriteString(st.computedText().Render(m.Cursor.View()))
		usedWidth++
	}

	suffix := m.session.Suffix()
	suffixWidth := 0
	if suffix != "" {
		suffixWidth = cells.Metrics{}.Width(suffix)
	}
	if pad := m.width - usedWidth - suffixWidth; pad > 0 {
		b.WriteString(st.Base.Render(strings.Repeat(" ", pad)))
	}
	if suffix != "" {
		b.WriteString(st.computedSuffix().Render(suffix))
	}

	return st.Base.Render(b.String())
}

// visibleRunes returns the displayed runes starting at crop that fit the
// editable window, together with their total cell width.
func (m Model) visibleRunes(displayed []rune, crop int) ([]rune, int) {
	if crop >= len(displayed) {
		return nil, 0
	}
	width := 0
	end := crop
	for end < len(displayed) {
		rw := cells.RuneWidth(displayed[end])
		if width+rw > m.width {
			break
		}
		width += rw
		end++
	}
	return displayed[crop:end], width
}

// placeholderView returns the prompt and placeholder view, if any.
func (m Model) placeholderView() string {
	st := m.style
	var b strings.Builder
	b.WriteString(st.computedPrompt().Render(m.Prompt))

	p := ansi.Truncate(m.Placeholder, m.width, "")
	pw := cells.Metrics{}.Width(p)

	if runes := []rune(p); m.focus && len(runes) > 0 {
		m.Cursor.TextStyle = st.computedPlaceholder()
		m.Cursor.SetChar(string(runes[0]))
		b.WriteString(m.Cursor.View())
		b.WriteString(st.computedPlaceholder().Render(string(runes[1:])))
	} else if m.focus {
		m.Cursor.SetChar(" ")
		b.WriteString(m.Cursor.View())
	} else {
		b.WriteString(st.computedPlaceholder().Render(p))
	}

	if pad := m.width - pw; pad > 0 {
		b.WriteString(st.Base.Render(strings.Repeat(" ", pad)))
	}
	return st.Base.Render(b.String())
}

// Paste is a command for pasting from the clipboard into the edit box.
func Paste() tea.Msg {
	str, err := clipboard.ReadAll()
	if err != nil {
		return pasteErrMsg{err}
	}
	return pasteMsg(str)
}
