// Package bytealg holds the case-sensitive search primitives the rest of the
// module delegates to. They are the runtime's own vectorised routines.
package bytealg

import "strings"

// Index returns the index of the first instance of needle in haystack,
// or -1. An empty needle matches at 0.
func Index(haystack, needle string) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return strings.IndexByte(haystack, needle[0])
	}
	// quick check for a match at position 0
	if haystack[0] == needle[0] && haystack[:n] == needle {
		return 0
	}
	return strings.Index(haystack, needle)
}

// LastIndex returns the index of the last instance of needle in haystack,
// or -1. An empty needle matches at len(haystack).
func LastIndex(haystack, needle string) int {
	return strings.LastIndex(haystack, needle)
}

// IndexByte returns the index of the first c in s, or -1.
func IndexByte(s string, c byte) int {
	return strings.IndexByte(s, c)
}

// LastIndexByte returns the index of the last c in s, or -1.
func LastIndexByte(s string, c byte) int {
	return strings.LastIndexByte(s, c)
}
