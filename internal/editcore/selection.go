package editcore

// Selection is the pair of selection anchors, both rune offsets into the
// buffer. The anchors are deliberately not kept ordered: either one may be
// the larger, which is what lets shift+arrow grow a selection in both
// directions from a moving caret. End is the anchor that moved last and
// always equals the caret.
type Selection struct {
	Start int
	End   int
}

// Bounds returns the normalized (low, high) range.
func (s Selection) Bounds() (lo, hi int) {
	if s.Start <= s.End {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// Len reports the number of selected runes.
func (s Selection) Len() int {
	lo, hi := s.Bounds()
	return hi - lo
}

func (s Selection) Empty() bool {
	return s.Start == s.End
}

// Collapse moves both anchors to idx.
func (s *Selection) Collapse(idx int) {
	s.Start = idx
	s.End = idx
}

// Clamp pulls both anchors into [0, n].
func (s *Selection) Clamp(n int) {
	s.Start = clamp(s.Start, 0, n)
	s.End = clamp(s.End, 0, n)
}
