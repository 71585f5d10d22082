package editcore

// Buffer owns the authoritative rune sequence of an edit session. All
// indices are rune offsets, never bytes. The With* operations are pure:
// they build a candidate slice and leave the buffer untouched. Session is
// the only caller of Replace, which is the commit primitive.
type Buffer struct {
	runes []rune
}

func (b *Buffer) Len() int {
	return len(b.runes)
}

func (b *Buffer) String() string {
	return string(b.runes)
}

// Runes exposes the current contents. Callers must treat the slice as
// read only; candidates are built through the With* operations.
func (b *Buffer) Runes() []rune {
	return b.runes
}

// Substring returns the text in [lo, hi), clamped to the buffer bounds.
func (b *Buffer) Substring(lo, hi int) string {
	n := len(b.runes)
	lo = clamp(lo, 0, n)
	hi = clamp(hi, lo, n)
	return string(b.runes[lo:hi])
}

// WithInsert returns a candidate with run inserted at index.
func (b *Buffer) WithInsert(index int, run []rune) []rune {
	index = clamp(index, 0, len(b.runes))
	return spliceRunes(b.runes, index, index, run)
}

// WithoutRange returns a candidate with [lo, hi) removed.
func (b *Buffer) WithoutRange(lo, hi int) []rune {
	n := len(b.runes)
	lo = clamp(lo, 0, n)
	hi = clamp(hi, lo, n)
	return spliceRunes(b.runes, lo, hi, nil)
}

// Replace swaps the committed contents for candidate.
func (b *Buffer) Replace(candidate []rune) {
	b.runes = candidate
}

// spliceRunes builds a fresh slice with base[lo:hi] replaced by run. The
// result never aliases base so a rejected candidate cannot leak into
// committed state.
func spliceRunes(base []rune, lo, hi int, run []rune) []rune {
	out := make([]rune, 0, len(base)-(hi-lo)+len(run))
	out = append(out, base[:lo]...)
	out = append(out, run...)
	out = append(out, base[hi:]...)
	return out
}

func clamp(v, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return min(high, max(low, v))
}
