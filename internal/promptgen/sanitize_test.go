package promptgen

import (
	"strings"
	"testing"
)

func TestSanitizeStripsUnsafeCharacters(t *testing.T) {
	t.Parallel()
	got := Sanitize(`a "quoted" <b>subject</b>; with extras`)
	want := "a quoted bsubject/b with extras"
	if got != want {
		t.Fatalf("Sanitize() = %q, want %q", got, want)
	}
}

func TestSanitizeTruncatesLongInput(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 600)
	got := Sanitize(long)
	if len(got) != maxFreeTextLen {
		t.Fatalf("len(Sanitize(long)) = %d, want %d", len(got), maxFreeTextLen)
	}
}

func TestSanitizeTrimsWhitespace(t *testing.T) {
	t.Parallel()
	if got := Sanitize("  padded subject  "); got != "padded subject" {
		t.Fatalf("Sanitize() = %q, want %q", got, "padded subject")
	}
}

func TestCleanupGrammar(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapse_spaces", input: "a  b   c", want: "a b c"},
		{name: "space_before_punct", input: "hello , world .", want: "hello, world."},
		{name: "space_after_punct", input: "one.Two,three", want: "one. Two, three"},
		{name: "already_clean", input: "A clean sentence.", want: "A clean sentence."},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := cleanupGrammar(tc.input); got != tc.want {
				t.Fatalf("cleanupGrammar(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidFreeText(t *testing.T) {
	t.Parallel()
	if validFreeText("ab") {
		t.Fatal("two characters should not validate")
	}
	if validFreeText("  a  ") {
		t.Fatal("whitespace padding should not count toward the minimum")
	}
	if !validFreeText("abc") {
		t.Fatal("three characters should validate")
	}
}
