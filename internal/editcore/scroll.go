package editcore

// adjustCrop nudges the crop window (the index of the first visible rune)
// by the minimal amount that keeps the caret's pixel offset inside
// [0, visibleWidth]. With a width limit active there is nothing to scroll
// and the crop pins to zero.
func (s *Session) adjustCrop() {
	if s.limitWidth || s.visibleWidth <= 0 || s.metrics == nil {
		s.crop = 0
		return
	}
	n := len(s.displayed)
	if s.crop > n {
		s.crop = n
	}

	// Never start the window later than needed to show the tail, so
	// deleting at the end scrolls text back in instead of leaving a gap.
	maxStart := n
	for maxStart > 0 && s.width(s.displayed[maxStart-1:]) <= s.visibleWidth {
		maxStart--
	}
	if s.crop > maxStart {
		s.crop = maxStart
	}

	caret := clamp(s.sel.End, 0, n)
	if caret < s.crop {
		s.crop = caret
	}
	for s.width(s.displayed[s.crop:caret]) > s.visibleWidth {
		s.crop++
	}
}

// FindCaretPosition maps a pixel offset, relative to the visible text
// area, to the nearest rune boundary. The alignment origin (a text
// narrower than the window sits centered or right-aligned) and the current
// crop are both accounted for. A midpoint tie resolves to the earlier
// boundary. The returned index is absolute, in [0, Len].
func (s *Session) FindCaretPosition(pixelX int) int {
	n := len(s.displayed)
	if s.metrics == nil {
		return clamp(s.sel.End, 0, n)
	}

	visible := s.displayed[clamp(s.crop, 0, n):]
	origin := 0
	if total := s.width(visible); total < s.visibleWidth {
		switch s.alignment {
		case AlignCenter:
			origin = (s.visibleWidth - total) / 2
		case AlignRight:
			origin = s.visibleWidth - total
		}
	}

	x := pixelX - origin
	best := 0
	bestDist := abs(x)
	for i := range visible {
		// accumulate whole-prefix widths so combining sequences measure
		// the same as they render
		boundary := s.width(visible[:i+1])
		if d := abs(x - boundary); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return clamp(s.crop+best, 0, n)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
