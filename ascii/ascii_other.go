//go:build !amd64 || noasm

package ascii

// ValidString reports whether every byte of s is 7-bit ASCII.
func ValidString(s string) bool {
	return isAsciiGo(s)
}

// IndexMask returns the index of the first byte of s that has any bit of
// mask set, or -1.
func IndexMask(s string, mask byte) int {
	return indexMaskGo(s, mask)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	return equalFoldGo(a, b)
}
