package bytestring

import (
	"github.com/mhr3/bytekit/ascii"
	"github.com/mhr3/bytekit/internal/bytealg"
)

// NotFound is returned by the search methods when there is no match.
const NotFound = -1

// FromEnd starts a backward search at the last byte.
const FromEnd = -1

// CaseSensitivity selects exact or ASCII case-folded comparison.
type CaseSensitivity int

const (
	CaseSensitive CaseSensitivity = iota
	CaseInsensitive
)

// IndexByteOf returns the index of the first c at or after from, or
// NotFound. A negative from is treated as 0.
func (s *String) IndexByteOf(c byte, from int, cs CaseSensitivity) int {
	from = max(from, 0)
	if from >= len(s.b) {
		return NotFound
	}
	hay := s.view()[from:]
	var i int
	if cs == CaseSensitive {
		i = bytealg.IndexByte(hay, c)
	} else {
		i = ascii.IndexByteFold(hay, c)
	}
	if i < 0 {
		return NotFound
	}
	return from + i
}

// IndexOf returns the index of the first match of needle starting at or
// after from, or NotFound. An empty needle never matches.
//
// A case-insensitive search for a needle longer than one byte is a single
// forward pass: a mismatch drops the partial match without retrying the
// mismatching byte as a new start, so "ab" is not found in "aab". Use
// ascii.IndexFold or Count for an exhaustive search.
func (s *String) IndexOf(needle string, from int, cs CaseSensitivity) int {
	switch len(needle) {
	case 0:
		return NotFound
	case 1:
		return s.IndexByteOf(needle[0], from, cs)
	}
	from = max(from, 0)
	if from >= len(s.b) {
		return NotFound
	}
	if cs == CaseInsensitive {
		return indexFoldStream(s.view(), lowered(needle), from)
	}
	i := bytealg.Index(s.view()[from:], needle)
	if i < 0 {
		return NotFound
	}
	return from + i
}

// Index is IndexOf(needle, 0, CaseSensitive).
func (s *String) Index(needle string) int {
	return s.IndexOf(needle, 0, CaseSensitive)
}

// IndexByte is IndexByteOf(c, 0, CaseSensitive).
func (s *String) IndexByte(c byte) int {
	return s.IndexByteOf(c, 0, CaseSensitive)
}

// LastIndexByteOf returns the index of the last c at or before from, or
// NotFound. FromEnd, or any from past the end, searches the whole string.
func (s *String) LastIndexByteOf(c byte, from int, cs CaseSensitivity) int {
	if len(s.b) == 0 {
		return NotFound
	}
	if from < 0 || from >= len(s.b) {
		from = len(s.b) - 1
	}
	hay := s.view()[:from+1]
	var i int
	if cs == CaseSensitive {
		i = bytealg.LastIndexByte(hay, c)
	} else {
		i = ascii.LastIndexByteFold(hay, c)
	}
	if i < 0 {
		return NotFound
	}
	return i
}

// LastIndexOf returns the start of the last match of needle that begins at
// or before from, or NotFound. FromEnd searches the whole string. An empty
// needle never matches.
//
// The case-insensitive form is the backward mirror of IndexOf's single
// pass, walking from the end of the latest allowed match.
func (s *String) LastIndexOf(needle string, from int, cs CaseSensitivity) int {
	switch len(needle) {
	case 0:
		return NotFound
	case 1:
		return s.LastIndexByteOf(needle[0], from, cs)
	}
	if len(needle) > len(s.b) {
		return NotFound
	}
	end := len(s.b)
	if from >= 0 && from < len(s.b)-len(needle) {
		end = from + len(needle)
	}
	if cs == CaseInsensitive {
		return lastIndexFoldStream(s.view(), lowered(needle), end-1)
	}
	i := bytealg.LastIndex(s.view()[:end], needle)
	if i < 0 {
		return NotFound
	}
	return i
}

// LastIndex is LastIndexOf(needle, FromEnd, CaseSensitive).
func (s *String) LastIndex(needle string) int {
	return s.LastIndexOf(needle, FromEnd, CaseSensitive)
}

// LastIndexByte is LastIndexByteOf(c, FromEnd, CaseSensitive).
func (s *String) LastIndexByte(c byte) int {
	return s.LastIndexByteOf(c, FromEnd, CaseSensitive)
}

// Contains reports whether IndexOf(needle, 0, cs) finds a match.
func (s *String) Contains(needle string, cs CaseSensitivity) bool {
	return s.IndexOf(needle, 0, cs) != NotFound
}

// ContainsByte reports whether c occurs in s.
func (s *String) ContainsByte(c byte, cs CaseSensitivity) bool {
	return s.IndexByteOf(c, 0, cs) != NotFound
}

// Count returns the number of non-overlapping matches of needle. An empty
// needle counts zero.
func (s *String) Count(needle string, cs CaseSensitivity) int {
	if len(needle) == 0 {
		return 0
	}
	return s.searcher(needle, cs).Count(s.view())
}

// rankSampleSize is how much of a large string a case-insensitive searcher
// samples to learn byte frequencies.
const rankSampleSize = 4096

// searcher builds a Searcher for needle. A case-insensitive search over a
// string much longer than the sample chooses its filter bytes from the
// string's own byte frequencies.
func (s *String) searcher(needle string, cs CaseSensitivity) ascii.Searcher {
	if cs == CaseSensitive || len(s.b) < 4*rankSampleSize {
		return ascii.NewSearcher(needle, cs == CaseSensitive)
	}
	ranks := ascii.BuildRankTable(s.view()[:rankSampleSize])
	return ascii.NewSearcherWithRanks(needle, ranks[:], false)
}

// StartsWith reports whether s begins with prefix.
func (s *String) StartsWith(prefix string, cs CaseSensitivity) bool {
	if cs == CaseInsensitive {
		return ascii.HasPrefixFold(s.view(), prefix)
	}
	return len(s.b) >= len(prefix) && s.view()[:len(prefix)] == prefix
}

// EndsWith reports whether s ends with suffix.
func (s *String) EndsWith(suffix string, cs CaseSensitivity) bool {
	if cs == CaseInsensitive {
		return ascii.HasSuffixFold(s.view(), suffix)
	}
	return len(s.b) >= len(suffix) && s.view()[len(s.b)-len(suffix):] == suffix
}

// StartsWithByte reports whether the first byte of s is c.
func (s *String) StartsWithByte(c byte, cs CaseSensitivity) bool {
	return len(s.b) > 0 && sameByte(s.b[0], c, cs)
}

// EndsWithByte reports whether the last byte of s is c.
func (s *String) EndsWithByte(c byte, cs CaseSensitivity) bool {
	return len(s.b) > 0 && sameByte(s.b[len(s.b)-1], c, cs)
}

// Chomp removes trailing bytes that belong to set and returns how many were
// removed. The first byte is never removed.
func (s *String) Chomp(set string) int {
	return s.chompFunc(ascii.MakeCharSet(set).Contains)
}

// ChompByte removes trailing copies of c, never the first byte, and returns
// how many were removed.
func (s *String) ChompByte(c byte) int {
	return s.chompFunc(func(b byte) bool { return b == c })
}

func (s *String) chompFunc(strip func(byte) bool) int {
	end := len(s.b)
	for end > 1 && strip(s.b[end-1]) {
		end--
	}
	removed := len(s.b) - end
	if removed > 0 {
		s.Truncate(end)
	}
	return removed
}

func sameByte(a, b byte, cs CaseSensitivity) bool {
	if cs == CaseInsensitive {
		return ascii.Lower(a) == ascii.Lower(b)
	}
	return a == b
}

func lowered(x string) string {
	b := make([]byte, len(x))
	ascii.ToLowerInto(b, x)
	return string(b)
}

// indexFoldStream keeps a count of needle bytes matched so far and resets
// it to zero on any mismatch. needle must already be lowercase.
func indexFoldStream(hay, needle string, from int) int {
	matched := 0
	for i := from; i < len(hay); i++ {
		if needle[matched] != ascii.Lower(hay[i]) {
			matched = 0
			continue
		}
		matched++
		if matched == len(needle) {
			return i - matched + 1
		}
	}
	return NotFound
}

// lastIndexFoldStream is indexFoldStream run backwards from hay[last],
// matching needle from its final byte.
func lastIndexFoldStream(hay, needle string, last int) int {
	n := len(needle)
	matched := 0
	for i := last; i >= 0; i-- {
		if needle[n-matched-1] != ascii.Lower(hay[i]) {
			matched = 0
			continue
		}
		matched++
		if matched == n {
			return i
		}
	}
	return NotFound
}
