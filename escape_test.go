package nstr

import "testing"

// TestEscapeRoundTrip tests that escape and unescape are exact inverses
func TestEscapeRoundTrip(t *testing.T) {
	samples := []string{
		"",
		"plain",
		`with "quotes"`,
		`back\slash`,
		"tab\there",
		"line\nbreak\r",
		"\a\b\f",
		"mixed \"q\" and \\ and \t end",
	}
	for _, s := range samples {
		escaped := EscapeString(s)
		if got := UnescapeString(escaped); got != s {
			t.Errorf("UnescapeString(EscapeString(%q)) = %q", s, got)
		}

		// Buffer forms agree with the string forms.
		dst := make([]byte, len(s)*2+1)
		n := Escape(dst, s)
		if string(dst[:n]) != escaped {
			t.Errorf("Escape(%q) = %q, want %q", s, dst[:n], escaped)
		}
		back := make([]byte, len(escaped)+1)
		m := Unescape(back, escaped)
		if string(back[:m]) != s {
			t.Errorf("Unescape(%q) = %q, want %q", escaped, back[:m], s)
		}
	}
}

// TestEscapeContent tests the escape table itself
func TestEscapeContent(t *testing.T) {
	if got := EscapeString("a\tb\"c\\d"); got != `a\tb\"c\\d` {
		t.Errorf("EscapeString = %q", got)
	}
	// Untouched input comes back as-is.
	if got := EscapeString("no specials"); got != "no specials" {
		t.Errorf("EscapeString = %q", got)
	}
}

// TestEscapeTruncation tests the best-effort partial output policy
func TestEscapeTruncation(t *testing.T) {
	// "a" fits, the pair for '\t' fits, 'b' does not.
	dst := make([]byte, 4)
	if n := Escape(dst, "a\tb"); n != 3 || string(dst[:n]) != `a\t` {
		t.Errorf("Escape into 4 = %q (%d)", dst[:n], n)
	}

	// The pair for '\t' does not fit: stop before it.
	dst = make([]byte, 3)
	if n := Escape(dst, "a\tb"); n != 1 || string(dst[:n]) != "a" {
		t.Errorf("Escape into 3 = %q (%d)", dst[:n], n)
	}
	if dst[1] != 0 {
		t.Error("Expected terminated output after truncation")
	}
}

// TestUnescapeUnknownSequence tests graceful pass-through
func TestUnescapeUnknownSequence(t *testing.T) {
	if got := UnescapeString(`a\qb`); got != `a\qb` {
		t.Errorf("UnescapeString = %q, want the backslash kept", got)
	}
	// A trailing backslash is literal too.
	if got := UnescapeString(`abc\`); got != `abc\` {
		t.Errorf("UnescapeString = %q", got)
	}
}

// TestFindClosingQuote tests escape-aware quote scanning
func TestFindClosingQuote(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{`apples"]`, 6},
		{`a\"b"c`, 4},   // first quote is escaped
		{`a\\"b`, 3},    // two backslashes are one escaped backslash
		{`a\\\"b"c`, 6}, // escaped backslash then escaped quote
		{`no quote`, -1},
		{`trailing\`, -1},
		{``, -1},
	}
	for _, tt := range tests {
		if got := FindClosingQuote(tt.s); got != tt.want {
			t.Errorf("FindClosingQuote(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

// TestQuotedSubstring tests prefix-anchored quoted extraction
func TestQuotedSubstring(t *testing.T) {
	got, ok := QuotedSubstring(`pose["apples"]`, "pose[")
	if !ok || got != "apples" {
		t.Errorf("QuotedSubstring = %q, %v", got, ok)
	}

	// Escapes in the quoted span are resolved.
	got, ok = QuotedSubstring(`pose["ap\"ples"]`, "pose[")
	if !ok || got != `ap"ples` {
		t.Errorf("QuotedSubstring = %q, %v", got, ok)
	}

	if _, ok := QuotedSubstring(`pose["apples"]`, "bones["); ok {
		t.Error("Expected missing prefix to report absence")
	}
	if _, ok := QuotedSubstring(`pose["apples`, "pose["); ok {
		t.Error("Expected unclosed quote to report absence")
	}
	if _, ok := QuotedSubstring(`pose[`, "pose["); ok {
		t.Error("Expected prefix at end of string to report absence")
	}
}
