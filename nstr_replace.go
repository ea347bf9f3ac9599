package nstr

import "strings"

// ReplaceAll returns a copy of str with every non-overlapping, left-to-right
// occurrence of old replaced by new. old must not be empty. When str
// contains no occurrence the result is a plain clone, skipping the
// accumulation buffer entirely.
func ReplaceAll(str, old, new string) string {
	if old == "" {
		panic("nstr: empty search string")
	}

	match := strings.Index(str, old)
	if match < 0 {
		return Clone(str)
	}

	var b strings.Builder
	b.Grow(len(str))
	for match >= 0 {
		b.WriteString(str[:match])
		b.WriteString(new)
		str = str[match+len(old):]
		match = strings.Index(str, old)
	}
	b.WriteString(str)
	return b.String()
}

// ReplaceChar replaces every occurrence of old in b with new, in place.
func ReplaceChar(b []byte, old, new byte) {
	for i := 0; i < len(b); i++ {
		if b[i] == old {
			b[i] = new
		}
	}
}
