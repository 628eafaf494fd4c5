package ascii

import "strings"

// HasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return EqualFold(s[:len(prefix)], prefix)
}

// HasSuffixFold reports whether s ends with suffix, ignoring ASCII case.
func HasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return EqualFold(s[len(s)-len(suffix):], suffix)
}

// IndexByteFold returns the index of the first byte of s equal to c under
// ASCII case folding, or -1.
func IndexByteFold(s string, c byte) int {
	lo, up := toLower(c), toUpper(c)
	if lo == up {
		return strings.IndexByte(s, c)
	}
	i := strings.IndexByte(s, lo)
	if i < 0 {
		return strings.IndexByte(s, up)
	}
	if j := strings.IndexByte(s[:i], up); j >= 0 {
		return j
	}
	return i
}

// LastIndexByteFold returns the index of the last byte of s equal to c under
// ASCII case folding, or -1.
func LastIndexByteFold(s string, c byte) int {
	lo, up := toLower(c), toUpper(c)
	if lo == up {
		return strings.LastIndexByte(s, c)
	}
	i := strings.LastIndexByte(s, lo)
	if i < 0 {
		return strings.LastIndexByte(s, up)
	}
	if j := strings.LastIndexByte(s[i+1:], up); j >= 0 {
		return i + 1 + j
	}
	return i
}

// IndexFold returns the index of the first case-insensitive match of needle
// in s, or -1. An empty needle matches at 0.
func IndexFold(s, needle string) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(s):
		return -1
	case len(needle) == 1:
		return IndexByteFold(s, needle[0])
	}
	return NewSearcher(needle, false).Index(s)
}

// LastIndexFold returns the index of the last case-insensitive match of
// needle in s, or -1. An empty needle matches at len(s).
func LastIndexFold(s, needle string) int {
	if len(needle) == 1 {
		return LastIndexByteFold(s, needle[0])
	}
	return lastIndexFoldGo(s, needle)
}

// ToLowerInto writes the ASCII lowercase form of src into dst, which must
// hold at least len(src) bytes. dst and src may be the same memory.
func ToLowerInto[T string | []byte](dst []byte, src T) {
	_ = dst[:len(src)]
	toLowerGo(dst, src)
}

// ToUpperInto writes the ASCII uppercase form of src into dst, which must
// hold at least len(src) bytes. dst and src may be the same memory.
func ToUpperInto[T string | []byte](dst []byte, src T) {
	_ = dst[:len(src)]
	toUpperGo(dst, src)
}
