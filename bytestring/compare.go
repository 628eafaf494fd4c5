package bytestring

import (
	"bytes"
	"cmp"

	"github.com/cespare/xxhash/v2"
	"github.com/mhr3/bytekit/ascii"
	"github.com/mhr3/bytekit/utf8"
)

// Compare returns -1, 0 or +1 ordering s and o byte by byte.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.b, o.b)
}

// CompareFold is Compare over ASCII-lowercased bytes, covering the full
// length including any embedded NUL.
func (s *String) CompareFold(o *String) int {
	a, b := s.b, o.b
	for i := range min(len(a), len(b)) {
		if ca, cb := ascii.Lower(a[i]), ascii.Lower(b[i]); ca != cb {
			return cmp.Compare(ca, cb)
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Less reports whether s sorts before o.
func (s *String) Less(o *String) bool {
	return s.Compare(o) < 0
}

// Equal reports whether s and o hold the same bytes.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.b, o.b)
}

// EqualString reports whether s holds exactly x.
func (s *String) EqualString(x string) bool {
	return s.view() == x
}

// EqualFold reports whether s and o are equal under ASCII case folding.
func (s *String) EqualFold(o *String) bool {
	return ascii.EqualFold(s.view(), o.view())
}

// EqualCString reports whether s equals p read up to its first NUL. A nil p
// is never equal.
func (s *String) EqualCString(p []byte) bool {
	if p == nil {
		return false
	}
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return bytes.Equal(s.b, p)
}

// Hash returns the xxhash of the content.
func (s *String) Hash() uint64 {
	return xxhash.Sum64(s.b)
}

// Key returns the content as a string suitable for use as a map key.
func (s *String) Key() string {
	return string(s.b)
}

// IsASCII reports whether every byte of s is below 0x80.
func (s *String) IsASCII() bool {
	return ascii.ValidString(s.view())
}

// ValidUTF8 reports whether s is valid UTF-8.
func (s *String) ValidUTF8() bool {
	return utf8.ValidString(s.view())
}

// FirstInvalidUTF8 returns the index of the first byte that breaks UTF-8
// validity, or NotFound.
func (s *String) FirstInvalidUTF8() int {
	return utf8.FirstInvalid(s.view())
}
