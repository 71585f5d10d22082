package scroll

import "testing"

func TestAlignKeepsFocusInsideBuffer(t *testing.T) {
	tests := []struct {
		name                     string
		focus, off, height, total int
		want                     int
	}{
		{"fits entirely", 3, 0, 10, 5, 0},
		{"focus visible, no move", 5, 3, 8, 20, 3},
		{"focus above window", 1, 5, 8, 20, 0},
		{"focus below window", 15, 0, 8, 20, 10},
		{"last row pins to bottom", 19, 0, 8, 20, 12},
		{"offset clamped", 5, 99, 8, 20, 3},
		{"zero height", 5, 2, 0, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Align(tt.focus, tt.off, tt.height, tt.total)
			if got != tt.want {
				t.Fatalf("Align(%d, %d, %d, %d) = %d, want %d",
					tt.focus, tt.off, tt.height, tt.total, got, tt.want)
			}
		})
	}
}

func TestAlignNeverScrollsPastEnd(t *testing.T) {
	for focus := 0; focus < 30; focus++ {
		off := Align(focus, 0, 10, 30)
		if off < 0 || off > 20 {
			t.Fatalf("focus %d produced out-of-range offset %d", focus, off)
		}
	}
}
