package nstr

import (
	"bytes"
	"math"
	"strconv"
)

//------------------------------------------------------------------------------
// DIGIT GROUPING
//------------------------------------------------------------------------------

// groupDigits inserts a comma every three digits from the right of a plain
// decimal string. An optional leading '-' stays outside the grouping.
func groupDigits(src string) string {
	sign := ""
	if src[0] == '-' {
		sign, src = "-", src[1:]
	}

	n := len(src)
	out := make([]byte, 0, len(sign)+n+(n-1)/3)
	out = append(out, sign...)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, src[i])
	}
	return string(out)
}

// FormatIntGrouped formats num with decimal grouping: 1000 -> "1,000".
func FormatIntGrouped(num int64) string {
	return groupDigits(strconv.FormatInt(num, 10))
}

// FormatUintGrouped is FormatIntGrouped for unsigned values.
func FormatUintGrouped(num uint64) string {
	return groupDigits(strconv.FormatUint(num, 10))
}

//------------------------------------------------------------------------------
// BYTE UNITS
//------------------------------------------------------------------------------

var (
	unitsBase10 = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}
	unitsBase2  = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
)

// FormatByteUnit formats a size in bytes using base-10 units (KB, MB, ...)
// or base-2 units (KiB, MiB, ...): 1000 -> "1 KB". The number of decimal
// places grows with the unit (e.g. 1.5 MB, 1.55 GB, 1.545 TB) and trailing
// zero decimals are stripped.
func FormatByteUnit(bytes int64, base10 bool) string {
	base := 1024.0
	units := unitsBase2[:]
	if base10 {
		base = 1000.0
		units = unitsBase10[:]
	}

	v := float64(bytes)
	order := 0
	for math.Abs(v) >= base && order+1 < len(units) {
		v /= base
		order++
	}
	decimals := order - 1
	if decimals < 0 {
		decimals = 0
	}

	buf := []byte(strconv.FormatFloat(v, 'f', decimals, 64))
	buf = buf[:len(buf)-RStripFloatZero(buf, 0)]

	return string(buf) + " " + units[order]
}

// RStripFloatZero replaces the trailing '0' bytes after the decimal point
// of buf with pad, in place, and returns how many it replaced. The first
// character after the decimal point is never touched:
//
//	0.0000 -> 0.0
//	2.0010 -> 2.001
func RStripFloatZero(buf []byte, pad byte) int {
	p := bytes.IndexByte(buf, '.')
	if p < 0 {
		return 0
	}
	first := p + 1 // first decimal place
	total := 0
	for end := len(buf) - 1; end > first && buf[end] == '0'; end-- {
		buf[end] = pad
		total++
	}
	return total
}
