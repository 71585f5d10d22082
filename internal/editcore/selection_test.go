package editcore

import "testing"

func TestSelectionBoundsUnordered(t *testing.T) {
	tests := []struct {
		sel    Selection
		lo, hi int
	}{
		{Selection{Start: 2, End: 5}, 2, 5},
		{Selection{Start: 5, End: 2}, 2, 5},
		{Selection{Start: 3, End: 3}, 3, 3},
	}
	for _, tt := range tests {
		lo, hi := tt.sel.Bounds()
		if lo != tt.lo || hi != tt.hi {
			t.Fatalf("Bounds of %+v = (%d, %d), want (%d, %d)", tt.sel, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestSelectionLenAndEmpty(t *testing.T) {
	sel := Selection{Start: 7, End: 3}
	if got := sel.Len(); got != 4 {
		t.Fatalf("expected length 4, got %d", got)
	}
	if sel.Empty() {
		t.Fatalf("selection with distinct anchors reported empty")
	}
	sel.Collapse(2)
	if !sel.Empty() || sel.Start != 2 || sel.End != 2 {
		t.Fatalf("collapse left %+v", sel)
	}
}

func TestSelectionClamp(t *testing.T) {
	sel := Selection{Start: -1, End: 12}
	sel.Clamp(5)
	if sel.Start != 0 || sel.End != 5 {
		t.Fatalf("clamp left %+v", sel)
	}
}
