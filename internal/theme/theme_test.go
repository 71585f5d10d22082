package theme

import "testing"

func TestLoadKnownThemes(t *testing.T) {
	if got := Load("default").Name; got != "default" {
		t.Fatalf("expected default theme, got %q", got)
	}
	if got := Load("light").Name; got != "light" {
		t.Fatalf("expected light theme, got %q", got)
	}
	if got := Load("").Name; got != "default" {
		t.Fatalf("empty name should resolve to default, got %q", got)
	}
}

func TestLoadUnknownFallsBack(t *testing.T) {
	if got := Load("no-such-theme").Name; got != "default" {
		t.Fatalf("unknown theme should fall back to default, got %q", got)
	}
}
