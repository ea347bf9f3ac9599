// Package benchmark compares nstr against ecosystem alternatives on
// realistic content-creation data: render frame names, datablock names and
// size readouts.
package benchmark

import "fmt"

// Deterministic generators: no rand seed, so every run and every competitor
// sees the same byte-identical inputs.

// lcg is a tiny linear congruential step for repeatable pseudo-variety.
func lcg(x uint64) uint64 {
	return x*6364136223846793005 + 1442695040888963407
}

var prefixes = []string{"render", "frame", "shot", "take", "comp", "anim", "layer"}
var suffixes = []string{".png", ".exr", ".jpg", "", ".0001.exr"}

// FrameNames returns n file-like names with embedded, variably zero-padded
// frame numbers - the worst case natural ordering has to get right.
func FrameNames(n int) []string {
	names := make([]string, n)
	x := uint64(12345)
	for i := range names {
		x = lcg(x)
		prefix := prefixes[x%uint64(len(prefixes))]
		x = lcg(x)
		suffix := suffixes[x%uint64(len(suffixes))]
		x = lcg(x)
		num := x % 100000
		x = lcg(x)
		switch x % 3 {
		case 0:
			names[i] = fmt.Sprintf("%s%d%s", prefix, num, suffix)
		case 1:
			names[i] = fmt.Sprintf("%s%04d%s", prefix, num, suffix)
		default:
			names[i] = fmt.Sprintf("%s_%06d%s", prefix, num, suffix)
		}
	}
	return names
}

// ByteSizes returns n sizes spanning bytes to petabytes.
func ByteSizes(n int) []int64 {
	sizes := make([]int64, n)
	x := uint64(6789)
	for i := range sizes {
		x = lcg(x)
		shift := x % 52
		x = lcg(x)
		sizes[i] = int64((x % 1000) << shift)
	}
	return sizes
}

// QuotedPaths returns n path-expression strings with characters that need
// escaping.
func QuotedPaths(n int) []string {
	paths := make([]string, n)
	x := uint64(424242)
	for i := range paths {
		x = lcg(x)
		paths[i] = fmt.Sprintf("pose.bones[\"bone_%d\"].location\tworld \"space\" \\%d", x%1000, x%97)
	}
	return paths
}
