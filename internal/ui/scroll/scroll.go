// Package scroll provides the offset math for keeping a focused row
// visible inside a fixed-height viewport.
package scroll

// Align returns a y-offset that keeps the focused row away from the
// viewport edges: the current offset is nudged just enough to preserve a
// small buffer above and below the focus.
func Align(focus, off, height, total int) int {
	if height <= 0 || total <= 0 {
		return 0
	}
	if focus < 0 {
		focus = 0
	}
	if focus >= total {
		focus = total - 1
	}
	if height > total {
		height = total
	}
	maxOff := total - height
	off = clamp(off, 0, maxOff)

	if focus >= total-1 {
		return maxOff
	}

	buffer := height / 4
	if buffer < 1 {
		buffer = 1
	}
	top := off + buffer
	bottom := off + height - 1 - buffer
	if focus < top {
		return clamp(focus-buffer, 0, maxOff)
	}
	if focus > bottom {
		return clamp(off+(focus-bottom), 0, maxOff)
	}
	return off
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
