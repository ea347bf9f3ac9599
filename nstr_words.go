package nstr

// MaxPossibleWordCount returns the most words FindSplitWords could ever
// produce from a string of strLen bytes. The tightest packing alternates a
// single character with a single delimiter.
func MaxPossibleWordCount(strLen int) int {
	return strLen/2 + 1
}

// FindSplitWords scans str[:limit] for words separated by runs of delim and
// returns their (offset, length) spans, at most wordsMax of them. Leading
// delimiters are skipped and a trailing word not closed by a delimiter is
// still emitted. A limit beyond len(str) is clamped.
func FindSplitWords(str string, limit int, delim byte, wordsMax int) [][2]int {
	if limit > len(str) {
		limit = len(str)
	}

	capHint := MaxPossibleWordCount(limit)
	if capHint > wordsMax {
		capHint = wordsMax
	}
	if capHint < 0 {
		capHint = 0
	}
	words := make([][2]int, 0, capHint)

	i := 0
	for ; i < limit; i++ {
		if str[i] != delim {
			break
		}
	}

	start := -1
	for ; i < limit && len(words) < wordsMax; i++ {
		if str[i] != delim {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			words = append(words, [2]int{start, i - start})
			start = -1
		}
	}

	if start >= 0 {
		words = append(words, [2]int{start, i - start})
	}

	return words
}
