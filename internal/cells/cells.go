// Package cells measures text in terminal cells. It satisfies the editing
// core's metrics contract for hosts that render one cell per pixel unit.
package cells

import (
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Metrics reports string widths in terminal cells, grapheme-cluster aware.
type Metrics struct{}

func (Metrics) Width(s string) int {
	return uniseg.StringWidth(s)
}

// RuneWidth reports the advance width of a single rune. Zero-width and
// control runes count as one cell so the caret always has a cell to sit on.
func RuneWidth(r rune) int {
	if w := rw.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
