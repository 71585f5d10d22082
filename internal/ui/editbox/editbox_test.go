package editbox

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/editline/internal/editcore"
	"github.com/unkn0wn-root/editline/internal/errdef"
)

type fakeClipboard struct {
	content string
	readErr error
}

func (f *fakeClipboard) ReadText() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.content, nil
}

func (f *fakeClipboard) WriteText(text string) error {
	f.content = text
	return nil
}

func newFocused(t *testing.T) Model {
	t.Helper()
	m := New()
	m.Focus()
	return m
}

func typeRunes(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, k tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: k})
	return m
}

func TestTypingCommitsRunes(t *testing.T) {
	m := newFocused(t)
	m = typeRunes(m, "héllo")
	if got := m.Value(); got != "héllo" {
		t.Fatalf("value = %q, want %q", got, "héllo")
	}
	if got := m.CaretPosition(); got != 5 {
		t.Fatalf("caret = %d, want 5", got)
	}
}

func TestBlurredModelIgnoresInput(t *testing.T) {
	m := New()
	m = typeRunes(m, "abc")
	if got := m.Value(); got != "" {
		t.Fatalf("blurred model accepted input: %q", got)
	}
}

func TestPatternRejectsTypedRune(t *testing.T) {
	m := newFocused(t)
	if err := m.SetPattern(editcore.PatternUInt); err != nil {
		t.Fatalf("set pattern: %v", err)
	}
	m = typeRunes(m, "12x3")
	if got := m.Value(); got != "123" {
		t.Fatalf("value = %q, want %q", got, "123")
	}
}

func TestSelectAllThenTypeReplaces(t *testing.T) {
	m := newFocused(t)
	m = typeRunes(m, "first")
	m = press(m, tea.KeyCtrlA)
	m = typeRunes(m, "z")
	if got := m.Value(); got != "z" {
		t.Fatalf("value = %q, want %q", got, "z")
	}
}

func TestBackspaceAndDelete(t *testing.T) {
	m := newFocused(t)
	m = typeRunes(m, "abc")
	m = press(m, tea.KeyBackspace)
	if got := m.Value(); got != "ab" {
		t.Fatalf("after backspace: %q", got)
	}
	m = press(m, tea.KeyHome)
	m = press(m, tea.KeyDelete)
	if got := m.Value(); got != "b" {
		t.Fatalf("after delete: %q", got)
	}
}

func TestShiftArrowSelects(t *testing.T) {
	m := newFocused(t)
	m = typeRunes(m, "abcd")
	m = press(m, tea.KeyHome)
	m = press(m, tea.KeyShiftRight)
	m = press(m, tea.KeyShiftRight)
	if got := m.SelectedText(); got != "ab" {
		t.Fatalf("selected = %q, want %q", got, "ab")
	}
}

func TestPasteMessageInsertsSanitized(t *testing.T) {
	m := newFocused(t)
	m, _ = m.Update(pasteMsg("one\ttwo\nthree"))
	if got := m.Value(); got != "one two three" {
		t.Fatalf("value = %q", got)
	}
}

func TestPasteErrorSetsCodedErr(t *testing.T) {
	m := newFocused(t)
	m, _ = m.Update(pasteErrMsg{errors.New("no display")})
	if got := errdef.CodeOf(m.Err); got != errdef.CodeClipboard {
		t.Fatalf("error code = %q, want %q", got, errdef.CodeClipboard)
	}
}

func TestPasteTruncatesToCharLimit(t *testing.T) {
	m := newFocused(t)
	m.SetCharLimit(4)
	m, _ = m.Update(pasteMsg("abcdef"))
	if got := m.Value(); got != "abcd" {
		t.Fatalf("value = %q, want %q", got, "abcd")
	}
}

func TestCutUsesSessionClipboard(t *testing.T) {
	m := newFocused(t)
	clip := &fakeClipboard{}
	m.Session().SetClipboard(clip)
	m = typeRunes(m, "secret")
	m = press(m, tea.KeyCtrlA)
	m = press(m, tea.KeyCtrlX)
	if got := m.Value(); got != "" {
		t.Fatalf("cut left value %q", got)
	}
	if clip.content != "secret" {
		t.Fatalf("clipboard = %q, want %q", clip.content, "secret")
	}
}

func TestSubmitEmitsMessage(t *testing.T) {
	m := newFocused(t)
	m = typeRunes(m, "done")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command from submit")
	}
	submit, ok := findSubmitMsg(cmd())
	if !ok {
		t.Fatalf("no SubmitMsg produced")
	}
	if submit.Value != "done" {
		t.Fatalf("submit value = %q, want %q", submit.Value, "done")
	}
	if got := m.Value(); got != "done" {
		t.Fatalf("submit should not clear the value, got %q", got)
	}
}

func findSubmitMsg(msg tea.Msg) (SubmitMsg, bool) {
	switch msg := msg.(type) {
	case SubmitMsg:
		return msg, true
	case tea.BatchMsg:
		for _, cmd := range msg {
			if cmd == nil {
				continue
			}
			if found, ok := findSubmitMsg(cmd()); ok {
				return found, true
			}
		}
	}
	return SubmitMsg{}, false
}

func TestBlurCallsOnLeave(t *testing.T) {
	m := newFocused(t)
	var left string
	m.OnLeave = func(value string) { left = value }
	m = typeRunes(m, "bye")
	m.Blur()
	if left != "bye" {
		t.Fatalf("OnLeave got %q, want %q", left, "bye")
	}
}

func TestReadOnlyStillNavigates(t *testing.T) {
	m := newFocused(t)
	m = typeRunes(m, "abc")
	m.SetReadOnly(true)
	m = typeRunes(m, "x")
	if got := m.Value(); got != "abc" {
		t.Fatalf("read-only accepted input: %q", got)
	}
	m = press(m, tea.KeyHome)
	if got := m.CaretPosition(); got != 0 {
		t.Fatalf("read-only should still navigate, caret = %d", got)
	}
}

func TestViewMasksPassword(t *testing.T) {
	m := newFocused(t)
	m.SetPasswordChar('*')
	m.SetValue("abc")
	view := m.View()
	if !strings.Contains(view, "***") {
		t.Fatalf("view should show mask, got %q", view)
	}
	if strings.Contains(view, "abc") {
		t.Fatalf("view leaked the committed text: %q", view)
	}
}

func TestViewShowsPlaceholderWhenEmpty(t *testing.T) {
	m := New()
	m.Placeholder = "type here"
	if view := m.View(); !strings.Contains(view, "type here") {
		t.Fatalf("placeholder missing from view: %q", view)
	}
	m.SetValue("x")
	if view := m.View(); strings.Contains(view, "type here") {
		t.Fatalf("placeholder shown with text present: %q", view)
	}
}

func TestViewShowsSuffix(t *testing.T) {
	m := New()
	m.SetSuffix("%")
	m.SetValue("42")
	if view := m.View(); !strings.Contains(view, "%") {
		t.Fatalf("suffix missing from view: %q", view)
	}
}

func TestSetWidthReservesPromptAndSuffix(t *testing.T) {
	m := New()
	m.Prompt = "> "
	m.SetSuffix("%")
	m.SetWidth(20)
	if got := m.Width(); got != 17 {
		t.Fatalf("editable width = %d, want 17", got)
	}
}

func TestApplyOverridesRebinds(t *testing.T) {
	km := DefaultKeyMap
	if err := km.ApplyOverrides(map[string][]string{"submit": {"ctrl+s"}}); err != nil {
		t.Fatalf("override: %v", err)
	}
	if got := km.Submit.Keys(); len(got) != 1 || got[0] != "ctrl+s" {
		t.Fatalf("submit keys = %v", got)
	}
}

func TestApplyOverridesUnknownName(t *testing.T) {
	km := DefaultKeyMap
	if err := km.ApplyOverrides(map[string][]string{"warp_speed": {"ctrl+w"}}); err == nil {
		t.Fatalf("expected error for unknown binding name")
	}
}

func TestApplyOverridesEmptyKeys(t *testing.T) {
	km := DefaultKeyMap
	if err := km.ApplyOverrides(map[string][]string{"submit": {}}); err == nil {
		t.Fatalf("expected error for empty key list")
	}
}

func TestMousePressPlacesCaret(t *testing.T) {
	m := newFocused(t)
	m.Prompt = "> "
	m.SetWidth(22)
	m.SetValue("abcdef")
	m, _ = m.Update(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      5,
	})
	if got := m.CaretPosition(); got != 3 {
		t.Fatalf("caret = %d, want 3", got)
	}
}

func TestDoubleClickSelectsWord(t *testing.T) {
	m := newFocused(t)
	m.Prompt = "> "
	m.SetWidth(22)
	m.SetValue("foo bar")
	click := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      7,
	}
	m, _ = m.Update(click)
	m, _ = m.Update(click)
	if got := m.SelectedText(); got != "bar" {
		t.Fatalf("selected = %q, want %q", got, "bar")
	}
}
