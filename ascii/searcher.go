package ascii

import (
	"strings"

	"github.com/mhr3/bytekit/internal/bytealg"
)

// Searcher performs repeated substring searches for one pattern.
// Construct once with NewSearcher, then call Index on many haystacks.
// Pattern analysis (rare byte selection, lowercasing) is paid once.
type Searcher struct {
	raw           string // original pattern
	norm          string // lowercase pattern, case-insensitive only
	rare1         byte   // first filter byte (lowercase)
	off1          int    // offset of rare1 in pattern
	rare2         byte   // second filter byte (lowercase)
	off2          int    // offset of rare2 in pattern
	caseSensitive bool
}

// NewSearcher creates a Searcher for pattern. If caseSensitive is false,
// matching ignores ASCII case.
func NewSearcher(pattern string, caseSensitive bool) Searcher {
	s := Searcher{raw: pattern, caseSensitive: caseSensitive}
	if !caseSensitive {
		s.norm = normalizeASCII(pattern)
		s.rare1, s.off1, s.rare2, s.off2 = selectRarePair(s.norm, &caseFoldRank)
	}
	return s
}

// NewSearcherWithRanks is NewSearcher with rare bytes chosen from ranks, a
// 256-entry frequency table such as BuildRankTable returns. Lower means
// rarer. Only case-insensitive searchers consult it.
func NewSearcherWithRanks(pattern string, ranks []byte, caseSensitive bool) Searcher {
	if len(ranks) != 256 {
		panic("ranks must have exactly 256 entries")
	}
	s := Searcher{raw: pattern, caseSensitive: caseSensitive}
	if !caseSensitive {
		s.norm = normalizeASCII(pattern)
		s.rare1, s.off1, s.rare2, s.off2 = selectRarePair(s.norm, foldRanks(ranks))
	}
	return s
}

// Pattern returns the pattern the Searcher was built for.
func (s Searcher) Pattern() string { return s.raw }

// Len returns the pattern length in bytes.
func (s Searcher) Len() int { return len(s.raw) }

// Index returns the index of the first match in haystack, or -1.
// An empty pattern matches at 0.
func (s Searcher) Index(haystack string) int {
	if len(s.raw) == 0 {
		return 0
	}
	if len(haystack) < len(s.raw) {
		return -1
	}
	if s.caseSensitive {
		return bytealg.Index(haystack, s.raw)
	}
	return indexFoldRare(haystack, s.rare1, s.off1, s.rare2, s.off2, s.norm)
}

// Count returns the number of non-overlapping matches in haystack.
// An empty pattern matches len(haystack)+1 times, as in strings.Count.
func (s Searcher) Count(haystack string) int {
	if len(s.raw) == 0 {
		return len(haystack) + 1
	}
	n := 0
	for {
		i := s.Index(haystack)
		if i < 0 {
			return n
		}
		n++
		haystack = haystack[i+len(s.raw):]
	}
}

// normalizeASCII converts a string to lowercase ASCII, without copying when
// there is nothing to convert.
func normalizeASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			goto normalize
		}
	}
	return s

normalize:
	b := make([]byte, len(s))
	toLowerGo(b, s)
	return string(b)
}

// selectRarePair picks the two rarest distinct bytes of an already
// lowercased pattern, costed with rank. Returns off1 <= off2.
func selectRarePair(norm string, rank *[256]uint16) (rare1 byte, off1 int, rare2 byte, off2 int) {
	n := len(norm)
	switch n {
	case 0:
		return 0, 0, 0, 0
	case 1:
		return norm[0], 0, norm[0], 0
	}

	best1Byte, best2Byte := norm[0], byte(0)
	best1Off, best2Off := 0, -1
	best1Rank, best2Rank := rank[best1Byte], uint16(0xFFFF)

	for i := 1; i < n; i++ {
		c := norm[i]
		r := rank[c]
		if r < best1Rank {
			if c != best1Byte {
				best2Byte, best2Off, best2Rank = best1Byte, best1Off, best1Rank
			}
			best1Byte, best1Off, best1Rank = c, i, r
		} else if c != best1Byte && r < best2Rank {
			best2Byte, best2Off, best2Rank = c, i, r
		}
	}

	if best2Off == -1 {
		// every byte is the same
		return norm[0], 0, norm[n-1], n - 1
	}

	off1, off2 = best1Off, best2Off
	rare1, rare2 = best1Byte, best2Byte
	if off1 > off2 {
		off1, off2 = off2, off1
		rare1, rare2 = rare2, rare1
	}
	return rare1, off1, rare2, off2
}

// indexFoldRare drives the scan with IndexByte over both cases of rare1,
// checks rare2, then verifies the whole pattern.
func indexFoldRare(haystack string, rare1 byte, off1 int, rare2 byte, off2 int, norm string) int {
	end := len(haystack) - len(norm) + off1 + 1
	scan := haystack[:end]
	lo, up := rare1, toUpper(rare1)

	nl, nu := -1, -1
	doneL, doneU := false, lo == up
	for from := off1; from < end; {
		if !doneL && nl < from {
			if nl = nextByte(scan, lo, from); nl < 0 {
				doneL = true
			}
		}
		if !doneU && nu < from {
			if nu = nextByte(scan, up, from); nu < 0 {
				doneU = true
			}
		}

		var hit int
		switch {
		case doneL && doneU:
			return -1
		case doneL:
			hit = nu
		case doneU:
			hit = nl
		default:
			hit = min(nl, nu)
		}

		cand := hit - off1
		if toLower(haystack[cand+off2]) == rare2 && EqualFold(haystack[cand:cand+len(norm)], norm) {
			return cand
		}
		from = hit + 1
	}
	return -1
}

func nextByte(s string, c byte, from int) int {
	if i := strings.IndexByte(s[from:], c); i >= 0 {
		return from + i
	}
	return -1
}
