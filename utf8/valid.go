// Package utf8 validates UTF-8, skipping ASCII runs with the word-at-a-time
// scanner from package ascii.
package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/bytekit/ascii"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	// speed up the common case
	idx := ascii.IndexMask(s, 0x80)
	if idx == -1 {
		return true
	}
	return stdlib.ValidString(s[idx:])
}

// FirstInvalid returns the index of the first byte that does not start a
// valid UTF-8 sequence, or -1 when s is valid.
func FirstInvalid(s string) int {
	i := 0
	for i < len(s) {
		if s[i] < stdlib.RuneSelf {
			j := ascii.IndexMask(s[i:], 0x80)
			if j == -1 {
				return -1
			}
			i += j
			continue
		}
		r, size := stdlib.DecodeRuneInString(s[i:])
		if r == stdlib.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
