package editcore

import "testing"

func TestBufferCandidatesArePure(t *testing.T) {
	var b Buffer
	b.Replace([]rune("hello"))

	candidate := b.WithInsert(5, []rune("!"))
	if got := string(candidate); got != "hello!" {
		t.Fatalf("expected candidate %q, got %q", "hello!", got)
	}
	if got := b.String(); got != "hello" {
		t.Fatalf("WithInsert mutated the buffer: %q", got)
	}

	candidate = b.WithoutRange(0, 2)
	if got := string(candidate); got != "llo" {
		t.Fatalf("expected candidate %q, got %q", "llo", got)
	}
	if got := b.String(); got != "hello" {
		t.Fatalf("WithoutRange mutated the buffer: %q", got)
	}
}

func TestBufferCandidateDoesNotAliasBuffer(t *testing.T) {
	var b Buffer
	b.Replace([]rune("abc"))

	candidate := b.WithInsert(1, []rune("X"))
	candidate[0] = 'Z'
	if got := b.String(); got != "abc" {
		t.Fatalf("candidate write leaked into buffer: %q", got)
	}
}

func TestBufferSubstringClamps(t *testing.T) {
	var b Buffer
	b.Replace([]rune("héllo"))

	tests := []struct {
		lo, hi int
		want   string
	}{
		{0, 5, "héllo"},
		{1, 2, "é"},
		{-3, 2, "hé"},
		{3, 99, "lo"},
		{4, 2, ""},
	}
	for _, tt := range tests {
		if got := b.Substring(tt.lo, tt.hi); got != tt.want {
			t.Fatalf("Substring(%d, %d) = %q, want %q", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestBufferRuneIndexing(t *testing.T) {
	var b Buffer
	b.Replace([]rune("日本語"))

	if got := b.Len(); got != 3 {
		t.Fatalf("expected rune length 3, got %d", got)
	}
	if got := string(b.WithInsert(1, []rune("x"))); got != "日x本語" {
		t.Fatalf("rune-indexed insert produced %q", got)
	}
	if got := string(b.WithoutRange(2, 3)); got != "日本" {
		t.Fatalf("rune-indexed delete produced %q", got)
	}
}
