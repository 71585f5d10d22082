package cells

import "testing"

func TestWidth(t *testing.T) {
	m := Metrics{}
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 6},
		{"a漢b", 4},
		{"é", 1}, // combining accent collapses into one cluster
	}
	for _, tt := range tests {
		if got := m.Width(tt.in); got != tt.want {
			t.Fatalf("Width(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRuneWidthGuardsZeroWidth(t *testing.T) {
	if got := RuneWidth('a'); got != 1 {
		t.Fatalf("RuneWidth('a') = %d, want 1", got)
	}
	if got := RuneWidth('漢'); got != 2 {
		t.Fatalf("RuneWidth('漢') = %d, want 2", got)
	}
	if got := RuneWidth('́'); got != 1 {
		t.Fatalf("RuneWidth(combining) = %d, want 1", got)
	}
}
