package nstr

import (
	"fmt"
	"strings"
)

// Clone returns a copy of s detached from any backing array s may share
// with a larger string or byte slice.
func Clone(s string) string {
	return strings.Clone(s)
}

// CloneN returns a copy of the first n bytes of s. n must not exceed
// len(s).
func CloneN(s string, n int) string {
	return strings.Clone(s[:n])
}

// Concat returns a new string holding a followed by b.
func Concat(a, b string) string {
	return a + b
}

//------------------------------------------------------------------------------
// BOUNDED COPIES
//------------------------------------------------------------------------------
//
// The bounded functions write into a caller-supplied fixed-capacity buffer
// and keep the C-string contract used by fixed-size record formats: the
// content is always terminated by a 0 byte inside the buffer and the buffer
// is never overrun. Capacity is len(dst); a zero-capacity destination is a
// contract violation.

// CopyBounded copies src into dst, truncating to len(dst)-1 bytes if
// needed, and terminates it. Returns dst.
func CopyBounded(dst []byte, src string) []byte {
	CopyBoundedLen(dst, src)
	return dst
}

// CopyBoundedLen is CopyBounded returning the number of bytes copied,
// excluding the terminator. A drop-in replacement for formatting "%s" into
// a fixed buffer.
func CopyBoundedLen(dst []byte, src string) int {
	if len(dst) == 0 {
		panic("nstr: zero-capacity destination")
	}
	n := len(src)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst, src[:n])
	dst[n] = 0
	return n
}

// CopyBoundedPad copies src into dst like CopyBounded, but wraps the
// content with pad on both ends unless the ends already carry it, still
// truncating src as needed to leave room for the pads and the terminator.
// An empty src yields an empty dst. A destination too small for both pads
// degrades to whatever fits, still terminated. Returns dst.
func CopyBoundedPad(dst []byte, src string, pad byte) []byte {
	if len(dst) == 0 {
		panic("nstr: zero-capacity destination")
	}
	if src == "" {
		dst[0] = 0
		return dst
	}

	room := len(dst) - 1 // terminator
	idx := 0
	if src[0] != pad && room > 0 {
		dst[idx] = pad
		idx++
		room--
	}

	srclen := len(src)
	if srclen > room {
		srclen = room
	}
	if srclen > 0 && src[srclen-1] != pad && srclen == room {
		srclen--
	}

	copy(dst[idx:], src[:srclen])
	idx += srclen

	if idx > 0 && dst[idx-1] != pad && idx < len(dst)-1 {
		dst[idx] = pad
		idx++
	}
	dst[idx] = 0

	return dst
}

//------------------------------------------------------------------------------
// FORMATTING
//------------------------------------------------------------------------------

// FormatBounded formats into dst with truncation, always terminating inside
// the buffer. Returns dst.
func FormatBounded(dst []byte, format string, args ...any) []byte {
	FormatBoundedLen(dst, format, args...)
	return dst
}

// FormatBoundedLen is FormatBounded returning the number of bytes written,
// excluding the terminator; on truncation this is len(dst)-1.
func FormatBoundedLen(dst []byte, format string, args ...any) int {
	return CopyBoundedLen(dst, fmt.Sprintf(format, args...))
}

// Format formats into a freshly grown string with no truncation.
func Format(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
