package nstr

import "strings"

// The escape mapping follows C and Python string escaping with double
// quotes: backslash, quote, tab, newline, carriage return, bell, backspace
// and form feed each map to a two-character backslash sequence, and nothing
// else is touched. Escape and Unescape are exact inverses over this
// alphabet, which is what lets quoted fields of path-like expressions
// round-trip.

// escapeByte returns the character that follows the backslash when c needs
// escaping, and whether it does.
func escapeByte(c byte) (byte, bool) {
	switch c {
	case '\\', '"':
		return c, true
	case '\t':
		return 't', true
	case '\n':
		return 'n', true
	case '\r':
		return 'r', true
	case '\a':
		return 'a', true
	case '\b':
		return 'b', true
	case '\f':
		return 'f', true
	}
	return c, false
}

// unescapeByte returns the literal for the character following a backslash,
// and whether the pair is a recognized escape sequence.
func unescapeByte(c byte) (byte, bool) {
	switch c {
	case '"', '\\':
		return c, true
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	}
	return c, false
}

// Escape writes the double-quote-safe form of src into dst and returns the
// number of bytes written, excluding the terminator. Since every character
// may need escaping, a buffer of 2*len(src)+1 always fits. When an escape
// pair would not fit in the remaining capacity the transform stops before
// that character; the output is still terminated. Truncation is a
// best-effort policy here, not an error.
func Escape(dst []byte, src string) int {
	if len(dst) == 0 {
		panic("nstr: zero-capacity destination")
	}
	max := len(dst) - 1
	n := 0
	for i := 0; i < len(src) && n < max; i++ {
		c := src[i]
		if e, ok := escapeByte(c); ok {
			if n+1 >= max {
				// Not enough space for the pair.
				break
			}
			dst[n] = '\\'
			n++
			c = e
		}
		dst[n] = c
		n++
	}
	dst[n] = 0
	return n
}

// EscapeString is Escape into a freshly built string, never truncating.
func EscapeString(src string) string {
	needed := false
	for i := 0; i < len(src); i++ {
		if _, ok := escapeByte(src[i]); ok {
			needed = true
			break
		}
	}
	if !needed {
		return src
	}

	var b strings.Builder
	b.Grow(len(src) * 2)
	for i := 0; i < len(src); i++ {
		if e, ok := escapeByte(src[i]); ok {
			b.WriteByte('\\')
			b.WriteByte(e)
		} else {
			b.WriteByte(src[i])
		}
	}
	return b.String()
}

// Unescape reverses Escape, writing into dst and returning the number of
// bytes written, excluding the terminator. The output is never longer than
// the input, so a buffer of len(src)+1 always fits. A backslash starting an
// unrecognized sequence passes through literally; the transform never
// fails.
func Unescape(dst []byte, src string) int {
	if len(dst) == 0 {
		panic("nstr: zero-capacity destination")
	}
	n := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\\' && i+1 < len(src) {
			if u, ok := unescapeByte(src[i+1]); ok {
				c = u
				i++
			}
		}
		dst[n] = c
		n++
	}
	dst[n] = 0
	return n
}

// UnescapeString is Unescape into a freshly built string.
func UnescapeString(src string) string {
	if !strings.Contains(src, "\\") {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\\' && i+1 < len(src) {
			if u, ok := unescapeByte(src[i+1]); ok {
				c = u
				i++
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// FindClosingQuote returns the index of the first un-escaped '"' in s, or
// -1 if none exists. Typically s starts just after an opening quote. A
// backslash escapes only the character that follows it, so a pair of
// backslashes is a single escaped backslash, not two escape introducers.
func FindClosingQuote(s string) int {
	escape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '"' && !escape {
			return i
		}
		escape = !escape && s[i] == '\\'
	}
	return -1
}

// QuotedSubstring extracts and unescapes the quoted value that follows
// prefix in str. The character directly after prefix is taken to be the
// opening quote, so for str `pose["ap\"ples"]` and prefix `pose[` it
// returns `ap"ples`. The second result is false when prefix is absent or no
// un-escaped closing quote follows.
func QuotedSubstring(str, prefix string) (string, bool) {
	start := strings.Index(str, prefix)
	if start < 0 {
		return "", false
	}
	start += len(prefix) + 1 // step over the opening quote
	if start > len(str) {
		return "", false
	}
	rest := str[start:]
	end := FindClosingQuote(rest)
	if end < 0 {
		return "", false
	}
	return UnescapeString(rest[:end]), true
}
