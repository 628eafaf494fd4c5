package bytestring

import "github.com/mhr3/bytekit/ascii"

// SplitFlag controls how Split and SplitByte cut a string.
type SplitFlag uint

const (
	NoSplitFlag SplitFlag = 0
	// SkipEmpty drops empty segments.
	SkipEmpty SplitFlag = 1 << (iota - 1)
	// KeepSeparators leaves the separator at the end of each segment it
	// terminates. SplitByte only.
	KeepSeparators
)

// SplitByte cuts s at every occurrence of sep. The segments are fresh
// copies.
func (s *String) SplitByte(sep byte, flags SplitFlag) []*String {
	keep := 0
	if flags&KeepSeparators != 0 {
		keep = 1
	}
	var out []*String
	last := 0
	for {
		next := s.IndexByteOf(sep, last, CaseSensitive)
		if next == NotFound {
			break
		}
		if next > last || flags&SkipEmpty == 0 {
			out = append(out, FromBytes(s.b[last:next+keep]))
		}
		last = next + 1
	}
	if last < len(s.b) || flags&SkipEmpty == 0 {
		out = append(out, FromBytes(s.b[last:]))
	}
	return out
}

// Split cuts s at every non-overlapping occurrence of sep. An empty sep
// never matches, so the whole string is the only segment.
func (s *String) Split(sep string, flags SplitFlag) []*String {
	var out []*String
	last := 0
	if len(sep) > 0 {
		srch := ascii.NewSearcher(sep, true)
		hay := s.view()
		for {
			i := srch.Index(hay[last:])
			if i < 0 {
				break
			}
			next := last + i
			if next > last || flags&SkipEmpty == 0 {
				out = append(out, FromBytes(s.b[last:next]))
			}
			last = next + len(sep)
		}
	}
	if last < len(s.b) || flags&SkipEmpty == 0 {
		out = append(out, FromBytes(s.b[last:]))
	}
	return out
}

// Join concatenates list with sep between elements. Nil elements count as
// empty.
func Join(list []*String, sep string) *String {
	if len(list) == 0 {
		return &String{}
	}
	size := len(sep) * (len(list) - 1)
	for _, e := range list {
		if e != nil {
			size += len(e.b)
		}
	}
	out := &String{}
	out.Reserve(size)
	for i, e := range list {
		if i > 0 {
			out.AppendString(sep)
		}
		if e != nil {
			out.Append(e.b)
		}
	}
	return out
}

// JoinByte concatenates list with sep between elements.
func JoinByte(list []*String, sep byte) *String {
	return Join(list, string(sep))
}

// Concat returns the concatenation of parts.
func Concat(parts ...*String) *String {
	return Join(parts, "")
}
