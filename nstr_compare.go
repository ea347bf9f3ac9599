// Package nstr provides bounded-buffer and natural-order string utilities.
// Created by dhawalhost (2025-11-18 09:24:41)
package nstr

import "strings"

//------------------------------------------------------------------------------
// ASCII HELPERS
//------------------------------------------------------------------------------

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// isPunct reports whether c is a printable ASCII character that is neither
// a letter, a digit, nor a space.
func isPunct(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}
	if c >= '0' && c <= '9' {
		return false
	}
	if c >= 'a' && c <= 'z' {
		return false
	}
	if c >= 'A' && c <= 'Z' {
		return false
	}
	return true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

//------------------------------------------------------------------------------
// CASE-INSENSITIVE COMPARISON
//------------------------------------------------------------------------------

// CaseEqual reports whether a and b are equal ignoring ASCII case.
func CaseEqual(a, b string) bool {
	return CaseCompare(a, b) == 0
}

// CaseCompare compares a and b ignoring ASCII case, returning -1, 0 or 1.
// Bytes outside the ASCII letters compare by value.
func CaseCompare(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c1 := lowerByte(a[i])
		c2 := lowerByte(b[i])
		if c1 < c2 {
			return -1
		}
		if c1 > c2 {
			return 1
		}
	}
	if len(a) < len(b) {
		return -1
	}
	if len(a) > len(b) {
		return 1
	}
	return 0
}

// CaseCompareN is like CaseCompare but compares at most n bytes of each
// string.
func CaseCompareN(a, b string, n int) int {
	if len(a) > n {
		a = a[:n]
	}
	if len(b) > n {
		b = b[:n]
	}
	return CaseCompare(a, b)
}

//------------------------------------------------------------------------------
// NATURAL COMPARISON
//------------------------------------------------------------------------------

// leftNumberCompare compares the digit runs at the start of s1 and s2 as
// numbers. Leading zeros are skipped on each side independently; a side with
// more significant digits is numerically larger. When the runs are
// numerically equal but differ in leading-zero count, the difference is
// recorded in the returned tiebreaker (fewer zeros ordering first), but only
// if no earlier digit run already recorded one.
func leftNumberCompare(s1, s2 string, tiebreaker int) (int, int) {
	p1, p2 := 0, 0
	for p1 < len(s1) && s1[p1] == '0' {
		p1++
	}
	for p2 < len(s2) && s2[p2] == '0' {
		p2++
	}
	numzero1, numzero2 := p1, p2

	// Length of the digit run both sides share. The side that still has a
	// digit when the other does not is the larger number.
	numdigit := 0
	for {
		d1 := p1+numdigit < len(s1) && isDigit(s1[p1+numdigit])
		d2 := p2+numdigit < len(s2) && isDigit(s2[p2+numdigit])
		if d1 && d2 {
			numdigit++
			continue
		}
		if d1 {
			return 1, tiebreaker
		}
		if d2 {
			return -1, tiebreaker
		}
		break
	}

	// Equal-length runs with no leading zeros left: lexicographic order is
	// numeric order.
	if numdigit > 0 {
		if cmp := strings.Compare(s1[p1:p1+numdigit], s2[p2:p2+numdigit]); cmp != 0 {
			return cmp, tiebreaker
		}
	}

	if tiebreaker == 0 {
		if numzero1 > numzero2 {
			tiebreaker = 1
		} else if numzero1 < numzero2 {
			tiebreaker = -1
		}
	}

	return 0, tiebreaker
}

// NaturalCompare is a case-insensitive comparison that keeps embedded
// numbers in numeric order, so "img2" sorts before "img10". A '.' sorts
// before any other unequal character, keeping "foo.bar" ahead of
// "foo 1.bar". Digit runs that are numerically equal but padded with a
// different number of leading zeros are ordered by the first such run seen,
// fewer zeros first; that deferred decision applies only when no plain
// character difference is found. Distinct strings never compare equal: the
// final fallback is an exact byte comparison.
func NaturalCompare(s1, s2 string) int {
	d1, d2 := 0, 0
	tiebreaker := 0

	for {
		if d1 < len(s1) && d2 < len(s2) && isDigit(s1[d1]) && isDigit(s2[d2]) {
			var cmp int
			cmp, tiebreaker = leftNumberCompare(s1[d1:], s2[d2:], tiebreaker)
			if cmp != 0 {
				return cmp
			}
			for d1 < len(s1) && isDigit(s1[d1]) {
				d1++
			}
			for d2 < len(s2) && isDigit(s2[d2]) {
				d2++
			}
		}

		// Test for the ends first so that shorter strings order in front.
		if d1 >= len(s1) || d2 >= len(s2) {
			break
		}

		c1 := lowerByte(s1[d1])
		c2 := lowerByte(s2[d2])

		switch {
		case c1 == c2:
			// Continue iteration.
		case c1 == '.':
			return -1
		case c2 == '.':
			return 1
		case c1 < c2:
			return -1
		case c1 > c2:
			return 1
		}

		d1++
		d2++
	}

	if tiebreaker != 0 {
		return tiebreaker
	}

	// The strings may still differ in case only; fall back to an exact byte
	// comparison so the relation stays a total order.
	return strings.Compare(s1, s2)
}

//------------------------------------------------------------------------------
// PAD-IGNORING COMPARISON
//------------------------------------------------------------------------------

// CompareIgnorePad compares a and b ignoring any leading or trailing run of
// pad on either side, so with pad '*', "*world" and "world*" compare equal.
// When the trimmed contents share a prefix, the shorter orders first.
func CompareIgnorePad(a, b string, pad byte) int {
	for len(a) > 0 && a[0] == pad {
		a = a[1:]
	}
	for len(b) > 0 && b[0] == pad {
		b = b[1:]
	}
	for len(a) > 0 && a[len(a)-1] == pad {
		a = a[:len(a)-1]
	}
	for len(b) > 0 && b[len(b)-1] == pad {
		b = b[:len(b)-1]
	}
	return strings.Compare(a, b)
}
