package nstr

// StartsWith reports whether str begins with prefix.
func StartsWith(str, prefix string) bool {
	if len(prefix) > len(str) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if str[i] != prefix[i] {
			return false
		}
	}
	return true
}

// EndsWith reports whether str ends with suffix.
func EndsWith(str, suffix string) bool {
	if len(suffix) > len(str) {
		return false
	}
	off := len(str) - len(suffix)
	for i := 0; i < len(suffix); i++ {
		if str[off+i] != suffix[i] {
			return false
		}
	}
	return true
}

// IndexInArray returns the index of the first element of arr equal to str,
// or -1 when absent.
func IndexInArray(str string, arr []string) int {
	for i, s := range arr {
		if s == str {
			return i
		}
	}
	return -1
}

// IndexFold returns the index of the first occurrence of substr in s,
// folding ASCII case on both sides, or -1 when absent. An empty substr
// matches at 0.
func IndexFold(s, substr string) int {
	return IndexFoldN(s, substr, len(substr))
}

// IndexFoldN is IndexFold matching only the first n bytes of substr; an n
// beyond len(substr) matches the whole of it.
func IndexFoldN(s, substr string, n int) int {
	if n > len(substr) {
		n = len(substr)
	}
	if n <= 0 {
		return 0
	}
	c0 := lowerByte(substr[0])
	for i := 0; i+n <= len(s); i++ {
		if lowerByte(s[i]) != c0 {
			continue
		}
		if n == 1 || CaseCompareN(s[i+1:], substr[1:n], n-1) == 0 {
			return i
		}
	}
	return -1
}

// HasWordPrefix reports whether needle occurs in haystack as a whole-word
// prefix: a case-folded match positioned at the start of haystack or
// directly after a space or punctuation character. Matches that fall inside
// a word are skipped and the scan continues.
func HasWordPrefix(haystack, needle string) bool {
	off := 0
	for {
		i := IndexFoldN(haystack[off:], needle, len(needle))
		if i < 0 {
			return false
		}
		pos := off + i
		if pos == 0 || haystack[pos-1] == ' ' || isPunct(haystack[pos-1]) {
			return true
		}
		off = pos + 1
	}
}

// AllWordsMatched reports whether every (offset, length) span of words,
// taken as a substring of str, has a word-prefix match in name. Stops at
// the first span that does not.
func AllWordsMatched(name, str string, words [][2]int) bool {
	for _, w := range words {
		if !HasWordPrefix(name, str[w[0]:w[0]+w[1]]) {
			return false
		}
	}
	return true
}

//------------------------------------------------------------------------------
// IN-PLACE CASE FOLDING AND TRIMMING
//------------------------------------------------------------------------------

// ToLowerASCII lowercases the ASCII letters of b in place.
func ToLowerASCII(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = lowerByte(b[i])
	}
}

// ToUpperASCII uppercases the ASCII letters of b in place.
func ToUpperASCII(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = upperByte(b[i])
	}
}

// RStrip returns s with trailing ASCII whitespace removed.
func RStrip(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}
