package ascii

// CharSet is a precomputed 256-bit byte set for IndexAny style scans.
// Build once with MakeCharSet and reuse; the zero value is the empty set.
type CharSet struct {
	bitset [4]uint64
}

// MakeCharSet creates a CharSet holding every byte of chars.
func MakeCharSet(chars string) CharSet {
	var cs CharSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		cs.bitset[c>>6] |= 1 << (c & 63)
	}
	return cs
}

// Contains reports whether c is in the set.
func (cs CharSet) Contains(c byte) bool {
	return cs.bitset[c>>6]&(1<<(c&63)) != 0
}

// IsEmpty reports whether the set has no members.
func (cs CharSet) IsEmpty() bool {
	return cs.bitset == [4]uint64{}
}

// IndexAny returns the index of the first byte in s that is in the set,
// or -1.
func (cs CharSet) IndexAny(s string) int {
	if cs.IsEmpty() {
		return -1
	}
	for i := 0; i < len(s); i++ {
		if cs.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// LastIndexAny returns the index of the last byte in s that is in the set,
// or -1.
func (cs CharSet) LastIndexAny(s string) int {
	if cs.IsEmpty() {
		return -1
	}
	for i := len(s) - 1; i >= 0; i-- {
		if cs.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// IndexNotAny returns the index of the first byte in s that is not in the
// set, or -1.
func (cs CharSet) IndexNotAny(s string) int {
	for i := 0; i < len(s); i++ {
		if !cs.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// LastIndexNotAny returns the index of the last byte in s that is not in
// the set, or -1.
func (cs CharSet) LastIndexNotAny(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if !cs.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// ContainsAny reports whether any byte in s is in the set.
func (cs CharSet) ContainsAny(s string) bool {
	return cs.IndexAny(s) >= 0
}

// IndexAny finds the first occurrence of any byte from chars in s.
func IndexAny(s, chars string) int {
	return MakeCharSet(chars).IndexAny(s)
}
