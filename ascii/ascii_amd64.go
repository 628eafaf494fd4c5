//go:build amd64 && !noasm

package ascii

import (
	segascii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// ValidString reports whether every byte of s is 7-bit ASCII.
func ValidString(s string) bool {
	if hasAVX2 {
		return segascii.ValidString(s)
	}
	return isAsciiGo(s)
}

// IndexMask returns the index of the first byte of s that has any bit of
// mask set, or -1.
func IndexMask(s string, mask byte) int {
	return indexMaskGo(s, mask)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	if len(a) < 32 || !hasAVX2 {
		return equalFoldGo(a, b)
	}
	return segascii.EqualFoldString(a, b)
}
