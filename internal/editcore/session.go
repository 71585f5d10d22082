// Package editcore implements the editing state machine behind a
// single-line text input: an authoritative rune buffer, a two-anchor
// selection with the caret on the active anchor, regex validation,
// password projection and a horizontal crop window.
//
// Every mutating intent runs the same three phases: build a candidate
// without touching committed state, validate it against the character
// limit, the pattern and (optionally) the rendered width, then either
// commit text+caret+selection+projection in one swap or discard the
// candidate entirely. Observers never see a half-applied edit.
package editcore

import "unicode"

// Alignment positions the displayed text inside the visible area when it
// is narrower than the window.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Metrics supplies advance widths for displayed substrings. The session
// treats widths as opaque pixel units; terminal hosts plug in a cell
// counter. Width must be deterministic for a given configuration.
type Metrics interface {
	Width(s string) int
}

// Clipboard is the external clipboard collaborator. Both calls may fail;
// the session swallows failures (empty paste, dropped copy) and never
// escalates them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Hooks receive committed state transitions. None of them fire for a
// rejected candidate. CaretMoved fires whenever the caret index changes,
// including pure moves; TextChanged only when the committed text differs.
type Hooks struct {
	TextChanged   func(text string)
	CaretMoved    func(index int)
	ReturnPressed func(text string)
}

// Session orchestrates the editing core. The zero value is not usable;
// construct with NewSession.
type Session struct {
	buf       Buffer
	sel       Selection
	validator Validator
	display   Display
	displayed []rune

	metrics   Metrics
	clipboard Clipboard
	hooks     Hooks

	maxChars     int
	readOnly     bool
	limitWidth   bool
	visibleWidth int
	alignment    Alignment
	suffix       string
	crop         int
}

func NewSession() *Session {
	return &Session{
		validator: NewValidator(),
		displayed: []rune{},
	}
}

// Collaborator wiring.

func (s *Session) SetMetrics(m Metrics) { s.metrics = m }

func (s *Session) SetClipboard(c Clipboard) { s.clipboard = c }

func (s *Session) SetHooks(h Hooks) { s.hooks = h }

// State accessors.

func (s *Session) Text() string { return s.buf.String() }

func (s *Session) Len() int { return s.buf.Len() }

func (s *Session) Caret() int { return s.sel.End }

func (s *Session) Selection() Selection { return s.sel }

func (s *Session) CropPosition() int { return s.crop }

// Displayed returns the current projection (masked when a password rune is
// set). Its length always equals Len.
func (s *Session) Displayed() string { return string(s.displayed) }

// DisplayedRunes exposes the projection for renderers. Read only.
func (s *Session) DisplayedRunes() []rune { return s.displayed }

// SelectedText returns the unmasked selected text, regardless of any
// password projection.
func (s *Session) SelectedText() string {
	lo, hi := s.sel.Bounds()
	return s.buf.Substring(lo, hi)
}

// Properties.

func (s *Session) MaxChars() int { return s.maxChars }

func (s *Session) PasswordChar() rune { return s.display.Mask }

func (s *Session) ReadOnly() bool { return s.readOnly }

func (s *Session) LimitWidth() bool { return s.limitWidth }

func (s *Session) VisibleWidth() int { return s.visibleWidth }

func (s *Session) Alignment() Alignment { return s.alignment }

func (s *Session) Suffix() string { return s.suffix }

func (s *Session) ValidatorPattern() string { return s.validator.Pattern() }

// SetValidatorPattern replaces the input pattern. On a malformed pattern
// the previous validator stays active and the call reports the failure.
// Text already committed is not re-validated.
func (s *Session) SetValidatorPattern(pattern string) error {
	return s.validator.SetPattern(pattern)
}

// SetMaxChars bounds the text length in runes; zero lifts the bound.
// Lowering the bound below the current length cuts the tail off the
// committed text.
func (s *Session) SetMaxChars(n int) {
	if n < 0 {
		n = 0
	}
	s.maxChars = n
	if n > 0 && s.buf.Len() > n {
		s.replace(s.buf.Runes()[:n], min(s.sel.End, n))
	}
}

// SetPasswordChar switches masking; zero disables it. The projection is
// rebuilt immediately, and under a width limit any runes whose masked form
// no longer fits are cut from the tail.
func (s *Session) SetPasswordChar(mask rune) {
	if s.display.Mask == mask {
		return
	}
	s.display.Mask = mask
	s.refreshProjection()
	s.trimToVisibleWidth()
	s.adjustCrop()
}

func (s *Session) SetReadOnly(readOnly bool) { s.readOnly = readOnly }

// SetLimitWidth toggles between rejecting edits that overflow the visible
// area (true) and scrolling a crop window over the text (false).
func (s *Session) SetLimitWidth(limit bool) {
	if s.limitWidth == limit {
		return
	}
	s.limitWidth = limit
	if limit {
		s.crop = 0
		s.trimToVisibleWidth()
	}
	s.adjustCrop()
}

// SetVisibleWidth tells the session how wide the visible text area is, in
// the same pixel units the Metrics collaborator reports. The host is
// responsible for subtracting the suffix width before calling this.
func (s *Session) SetVisibleWidth(px int) {
	if px < 0 {
		px = 0
	}
	s.visibleWidth = px
	s.trimToVisibleWidth()
	s.adjustCrop()
}

func (s *Session) SetAlignment(a Alignment) { s.alignment = a }

// SetSuffix stores the cosmetic trailing text. It is never part of the
// buffer, the selection or validation; only rendering and the host's width
// budget care about it.
func (s *Session) SetSuffix(suffix string) { s.suffix = suffix }

// Intents.

// InsertRune inserts a single rune at the caret, replacing the selection
// if one exists. Strict validation: an over-budget or non-matching
// candidate is rejected outright. Reports whether the edit committed.
func (s *Session) InsertRune(r rune) bool {
	return s.insert([]rune{r}, false)
}

// InsertString inserts a run of runes atomically under the same strict
// rules as InsertRune: the whole run commits or nothing does.
func (s *Session) InsertString(text string) bool {
	return s.insert([]rune(text), false)
}

// InsertPasted inserts a run under paste semantics: the run is first cut
// down to the remaining character budget, then validated as one unit. A
// pattern or width failure discards the entire paste.
func (s *Session) InsertPasted(text string) bool {
	return s.insert([]rune(text), true)
}

func (s *Session) insert(run []rune, fill bool) bool {
	if s.readOnly || len(run) == 0 {
		return false
	}
	lo, hi := s.sel.Bounds()
	if fill && s.maxChars > 0 {
		budget := s.maxChars - (s.buf.Len() - (hi - lo))
		if budget <= 0 {
			return false
		}
		if len(run) > budget {
			run = run[:budget]
		}
	}
	candidate := spliceRunes(s.buf.Runes(), lo, hi, run)
	if !s.accepts(candidate) {
		return false
	}
	s.replace(candidate, lo+len(run))
	return true
}

// SetText replaces the whole text. Unlike user input this works on a
// read-only session. The new text is cut to MaxChars from the tail, then
// cut further while a width limit is active, and finally matched against
// the validator: a mismatch commits the empty string instead of rejecting
// the call. The caret lands at the end of the committed text with the
// selection cleared.
func (s *Session) SetText(text string) {
	runes := []rune(text)
	if s.maxChars > 0 && len(runes) > s.maxChars {
		runes = runes[:s.maxChars]
	}
	if s.limitWidth && s.visibleWidth > 0 {
		for len(runes) > 0 && s.width(s.display.Project(runes)) > s.visibleWidth {
			runes = runes[:len(runes)-1]
		}
	}
	if !s.validator.Matches(string(runes)) {
		// clear-on-mismatch: the one case where failed validation still
		// mutates state
		runes = nil
	}
	s.replace(runes, len(runes))
}

// DeleteSelection removes the selected range. Shrinking always commits,
// even when an exotic pattern would reject the shorter text; a user must
// be able to delete their way out of an invalid-looking value. Reports
// whether anything was removed.
func (s *Session) DeleteSelection() bool {
	if s.readOnly || s.sel.Empty() {
		return false
	}
	lo, hi := s.sel.Bounds()
	s.replace(s.buf.WithoutRange(lo, hi), lo)
	return true
}

// Backspace removes the selection, or the rune before the caret. No-op at
// the start of the text.
func (s *Session) Backspace() bool {
	if s.readOnly {
		return false
	}
	if !s.sel.Empty() {
		return s.DeleteSelection()
	}
	caret := s.sel.End
	if caret == 0 {
		return false
	}
	s.replace(s.buf.WithoutRange(caret-1, caret), caret-1)
	return true
}

// DeleteForward removes the selection, or the rune at the caret. No-op at
// the end of the text.
func (s *Session) DeleteForward() bool {
	if s.readOnly {
		return false
	}
	if !s.sel.Empty() {
		return s.DeleteSelection()
	}
	caret := s.sel.End
	if caret >= s.buf.Len() {
		return false
	}
	s.replace(s.buf.WithoutRange(caret, caret+1), caret)
	return true
}

// MoveLeft moves the caret one rune left. Without extend, an existing
// selection collapses to its low edge instead of moving; with extend, the
// inactive anchor stays put and the selection grows or shrinks.
func (s *Session) MoveLeft(extend bool) {
	if extend {
		s.extendCaret(s.sel.End - 1)
		return
	}
	if !s.sel.Empty() {
		lo, _ := s.sel.Bounds()
		s.setCaret(lo)
		return
	}
	s.setCaret(s.sel.End - 1)
}

// MoveRight mirrors MoveLeft; an unextended move with a selection
// collapses to the high edge.
func (s *Session) MoveRight(extend bool) {
	if extend {
		s.extendCaret(s.sel.End + 1)
		return
	}
	if !s.sel.Empty() {
		_, hi := s.sel.Bounds()
		s.setCaret(hi)
		return
	}
	s.setCaret(s.sel.End + 1)
}

// MoveWordLeft moves the caret to the beginning of the word left of it:
// one run of whitespace is skipped, then one run of non-whitespace.
func (s *Session) MoveWordLeft(extend bool) {
	idx := wordLeftIndex(s.buf.Runes(), s.sel.End)
	if extend {
		s.extendCaret(idx)
		return
	}
	s.setCaret(idx)
}

// MoveWordRight moves the caret past the end of the next word.
func (s *Session) MoveWordRight(extend bool) {
	idx := wordRightIndex(s.buf.Runes(), s.sel.End)
	if extend {
		s.extendCaret(idx)
		return
	}
	s.setCaret(idx)
}

func (s *Session) MoveStart(extend bool) {
	if extend {
		s.extendCaret(0)
		return
	}
	s.setCaret(0)
}

func (s *Session) MoveEnd(extend bool) {
	if extend {
		s.extendCaret(s.buf.Len())
		return
	}
	s.setCaret(s.buf.Len())
}

// Select sets the selection anchors directly. start is clamped into the
// text; a negative or overlong length selects through the end. The caret
// lands on the far anchor.
func (s *Session) Select(start, length int) {
	n := s.buf.Len()
	start = clamp(start, 0, n)
	end := n
	if length >= 0 && start+length < n {
		end = start + length
	}
	prev := s.sel.End
	s.sel = Selection{Start: start, End: end}
	s.adjustCrop()
	if end != prev && s.hooks.CaretMoved != nil {
		s.hooks.CaretMoved(end)
	}
}

func (s *Session) SelectAll() {
	s.Select(0, -1)
}

// SetCaretPosition collapses the selection onto idx, clamped to the text.
func (s *Session) SetCaretPosition(idx int) {
	s.setCaret(idx)
}

// ExtendTo moves the active anchor to idx while the fixed anchor stays in
// place. Pointer drags and shift-clicks use this.
func (s *Session) ExtendTo(idx int) {
	s.extendCaret(idx)
}

// SelectWordAt selects the whitespace-delimited word around idx, e.g. on a
// double-click. Clicking in the gap between two words snaps to whichever
// word is closer; the second half of the gap belongs to the next word.
func (s *Session) SelectWordAt(idx int) {
	runes := s.buf.Runes()
	idx = clamp(idx, 0, len(runes))
	if idx < len(runes) && unicode.IsSpace(runes[idx]) {
		prev := idx
		for prev > 0 && unicode.IsSpace(runes[prev-1]) {
			prev--
		}
		next := idx
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if prev > 0 && (next >= len(runes) || idx-prev < next-idx) {
			idx = prev - 1
		} else {
			idx = next
		}
	}
	hi := wordRightIndex(runes, idx)
	lo := wordLeftIndex(runes, hi)
	s.Select(lo, hi-lo)
}

// Copy writes the selected text to the clipboard. No state change; a
// dropped write is not an error here.
func (s *Session) Copy() {
	if s.sel.Empty() || s.clipboard == nil {
		return
	}
	lo, hi := s.sel.Bounds()
	_ = s.clipboard.WriteText(s.buf.Substring(lo, hi))
}

// Cut copies, then deletes the selection. Read-only sessions still copy
// but keep their text.
func (s *Session) Cut() {
	s.Copy()
	if !s.readOnly {
		s.DeleteSelection()
	}
}

// Paste inserts the clipboard contents as one atomic run. An unavailable
// or empty clipboard is a silent no-op.
func (s *Session) Paste() bool {
	if s.readOnly || s.clipboard == nil {
		return false
	}
	text, err := s.clipboard.ReadText()
	if err != nil || text == "" {
		return false
	}
	return s.InsertPasted(text)
}

// Submit reports the current text through the ReturnPressed hook. No state
// change.
func (s *Session) Submit() {
	if s.hooks.ReturnPressed != nil {
		s.hooks.ReturnPressed(s.buf.String())
	}
}

// Internal commit machinery.

// accepts runs phase two of the edit protocol against a candidate.
func (s *Session) accepts(candidate []rune) bool {
	if s.maxChars > 0 && len(candidate) > s.maxChars {
		return false
	}
	if !s.validator.Matches(string(candidate)) {
		return false
	}
	if s.limitWidth && s.visibleWidth > 0 &&
		s.width(s.display.Project(candidate)) > s.visibleWidth {
		return false
	}
	return true
}

// replace is the single commit point: text, projection, caret, selection
// and crop window change together, then hooks observe the settled state.
func (s *Session) replace(candidate []rune, caret int) {
	changed := string(candidate) != s.buf.String()
	s.buf.Replace(candidate)
	s.refreshProjection()
	s.setCaret(caret)
	if changed && s.hooks.TextChanged != nil {
		s.hooks.TextChanged(s.buf.String())
	}
}

func (s *Session) refreshProjection() {
	s.displayed = s.display.Project(s.buf.Runes())
}

// setCaret collapses the selection onto idx, keeps the caret visible and
// fires CaretMoved when the index changed.
func (s *Session) setCaret(idx int) {
	idx = clamp(idx, 0, s.buf.Len())
	prev := s.sel.End
	s.sel.Collapse(idx)
	s.adjustCrop()
	if idx != prev && s.hooks.CaretMoved != nil {
		s.hooks.CaretMoved(idx)
	}
}

// extendCaret moves only the active anchor, growing or shrinking the
// selection around the fixed one.
func (s *Session) extendCaret(idx int) {
	idx = clamp(idx, 0, s.buf.Len())
	prev := s.sel.End
	s.sel.End = idx
	s.adjustCrop()
	if idx != prev && s.hooks.CaretMoved != nil {
		s.hooks.CaretMoved(idx)
	}
}

// trimToVisibleWidth cuts committed runes from the tail while the active
// width limit no longer has room for them, e.g. after the window shrank or
// a wider mask rune was set.
func (s *Session) trimToVisibleWidth() {
	if !s.limitWidth || s.visibleWidth <= 0 {
		return
	}
	runes := s.buf.Runes()
	trimmed := runes
	for len(trimmed) > 0 && s.width(s.display.Project(trimmed)) > s.visibleWidth {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) != len(runes) {
		s.replace(spliceRunes(trimmed, len(trimmed), len(trimmed), nil), min(s.sel.End, len(trimmed)))
	}
}

func (s *Session) width(runes []rune) int {
	if s.metrics == nil {
		return 0
	}
	return s.metrics.Width(string(runes))
}

func wordLeftIndex(text []rune, idx int) int {
	for idx > 0 && unicode.IsSpace(text[idx-1]) {
		idx--
	}
	for idx > 0 && !unicode.IsSpace(text[idx-1]) {
		idx--
	}
	return idx
}

func wordRightIndex(text []rune, idx int) int {
	n := len(text)
	for idx < n && unicode.IsSpace(text[idx]) {
		idx++
	}
	for idx < n && !unicode.IsSpace(text[idx]) {
		idx++
	}
	return idx
}
