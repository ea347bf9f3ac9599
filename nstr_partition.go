package nstr

import "strings"

// Partition splits str at the leftmost occurrence of any delimiter byte in
// delim, returning the text before it, the delimiter itself and the text
// after it. When no delimiter occurs, pre is str and sep and suf are empty.
// The results alias str; the prefix length is len(pre).
func Partition(str, delim string) (pre, sep, suf string) {
	return partitionSpan(str, len(str), delim, false)
}

// RPartition is Partition splitting at the rightmost occurrence instead.
func RPartition(str, delim string) (pre, sep, suf string) {
	return partitionSpan(str, len(str), delim, true)
}

// RPartitionSpan is RPartition restricted to str[:end], without copying.
func RPartitionSpan(str string, end int, delim string) (pre, sep, suf string) {
	return partitionSpan(str, end, delim, true)
}

func partitionSpan(str string, end int, delim string, fromRight bool) (pre, sep, suf string) {
	s := str[:end]

	best := -1
	for i := 0; i < len(delim); i++ {
		var p int
		if fromRight {
			p = strings.LastIndexByte(s, delim[i])
		} else {
			p = strings.IndexByte(s, delim[i])
		}
		if p < 0 {
			continue
		}
		if best < 0 || (fromRight && p > best) || (!fromRight && p < best) {
			best = p
		}
	}

	if best < 0 {
		return s, "", ""
	}
	return s[:best], s[best : best+1], s[best+1:]
}
