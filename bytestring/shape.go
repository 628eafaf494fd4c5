package bytestring

import (
	"github.com/mhr3/bytekit/ascii"
)

// DefaultTrimSet is the whitespace set TrimmedDefault strips.
const DefaultTrimSet = " \f\n\r\t\v"

// Pad selects the side Padded fills or cuts.
type Pad int

const (
	PadBeginning Pad = iota
	PadEnd
)

// Trimmed returns a copy of s without leading and trailing bytes from set.
// An empty set trims nothing; TrimmedDefault strips whitespace.
func (s *String) Trimmed(set string) *String {
	if set == "" {
		return s.Clone()
	}
	cs := ascii.MakeCharSet(set)
	hay := s.view()
	start := cs.IndexNotAny(hay)
	if start < 0 {
		return &String{}
	}
	end := cs.LastIndexNotAny(hay)
	return FromBytes(s.b[start : end+1])
}

// TrimmedDefault is Trimmed(DefaultTrimSet).
func (s *String) TrimmedDefault() *String {
	return s.Trimmed(DefaultTrimSet)
}

// Padded returns a copy of s filled with fill up to size bytes on the given
// side. A longer s is returned unchanged unless truncate is set, in which
// case bytes are cut from the same side to leave exactly size.
func (s *String) Padded(side Pad, size int, fill byte, truncate bool) *String {
	checkSize(size)
	n := len(s.b)
	switch {
	case n > size && truncate:
		if side == PadBeginning {
			return s.Right(size)
		}
		return s.Left(size)
	case n >= size:
		return s.Clone()
	}
	out := &String{}
	out.Reserve(size)
	if side == PadBeginning {
		out.ResizeFill(size-n, fill)
		out.Append(s.b)
	} else {
		out.Append(s.b)
		out.ResizeFill(size, fill)
	}
	return out
}

// ToLower returns a copy of s with ASCII letters lowercased.
func (s *String) ToLower() *String {
	b := make([]byte, len(s.b), len(s.b)+1)
	ascii.ToLowerInto(b, s.b)
	out := &String{}
	out.setBytes(b)
	return out
}

// ToUpper returns a copy of s with ASCII letters uppercased.
func (s *String) ToUpper() *String {
	b := make([]byte, len(s.b), len(s.b)+1)
	ascii.ToUpperInto(b, s.b)
	out := &String{}
	out.setBytes(b)
	return out
}

// Left returns a copy of the first n bytes. n is clamped to the length.
func (s *String) Left(n int) *String {
	n = min(max(n, 0), len(s.b))
	return FromBytes(s.b[:n])
}

// Right returns a copy of the last n bytes. n is clamped to the length.
func (s *String) Right(n int) *String {
	n = min(max(n, 0), len(s.b))
	return FromBytes(s.b[len(s.b)-n:])
}

// Mid returns a copy of n bytes starting at from. A negative n, or one past
// the end, takes everything to the end. It panics if from > Len().
func (s *String) Mid(from, n int) *String {
	checkPos(from, len(s.b))
	end := len(s.b)
	if n >= 0 && n < end-from {
		end = from + n
	}
	return FromBytes(s.b[from:end])
}

// Replace substitutes with for the n bytes at idx. n is clamped to the
// bytes available. It panics if idx > Len().
func (s *String) Replace(idx, n int, with string) {
	checkPos(idx, len(s.b))
	checkSize(n)
	end := idx + min(n, len(s.b)-idx)
	out := make([]byte, 0, len(s.b)-(end-idx)+len(with)+1)
	out = append(out, s.b[:idx]...)
	out = append(out, with...)
	out = append(out, s.b[end:]...)
	s.setBytes(out)
}

// ReplaceAll substitutes to for every non-overlapping occurrence of from,
// scanning left to right, and returns the number of replacements. An empty
// from never matches.
func (s *String) ReplaceAll(from, to string, cs CaseSensitivity) int {
	if len(from) == 0 || len(from) > len(s.b) {
		return 0
	}
	srch := s.searcher(from, cs)
	hay := s.view()
	var out []byte
	count, last := 0, 0
	for {
		i := srch.Index(hay[last:])
		if i < 0 {
			break
		}
		if out == nil {
			out = make([]byte, 0, len(hay)+1)
		}
		out = append(out, hay[last:last+i]...)
		out = append(out, to...)
		last += i + len(from)
		count++
	}
	if count == 0 {
		return 0
	}
	out = append(out, hay[last:]...)
	s.setBytes(out)
	return count
}

// ReplaceByte overwrites every from with to and returns how many bytes
// changed.
func (s *String) ReplaceByte(from, to byte) int {
	count := 0
	for i := s.IndexByte(from); i != NotFound; i = s.IndexByteOf(from, i+1, CaseSensitive) {
		s.b[i] = to
		count++
	}
	return count
}
