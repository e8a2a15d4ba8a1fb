package textutil

import "testing"

func TestNormalizeInputComposes(t *testing.T) {
	decomposed := "Cafe\u0301 was great  "
	got := NormalizeInput(decomposed)
	if got != "Caf\u00e9 was great" {
		t.Fatalf("expected NFC composed text, got %q", got)
	}
	if NormalizeInput(" \t\n ") != "" {
		t.Fatal("expected whitespace-only input to normalize to empty")
	}
}

func TestSnippet(t *testing.T) {
	if got := Snippet("  a\n\tb   c ", 0); got != "a b c" {
		t.Fatalf("unexpected snippet %q", got)
	}
	if got := Snippet("abcdef", 3); got != "abc..." {
		t.Fatalf("unexpected truncated snippet %q", got)
	}
	if got := Snippet("", 10); got != "<empty>" {
		t.Fatalf("unexpected empty snippet %q", got)
	}
}

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"polarity":   "Polarity",
		"error_kind": "Error Kind",
		"":           "",
	}
	for in, want := range cases {
		if got := Label(in); got != want {
			t.Fatalf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}
