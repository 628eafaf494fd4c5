// Package bytestring implements String, a mutable byte string for text
// processing over raw bytes: search, split/join, trim/pad, case folding,
// numeric conversion and printf-style construction.
//
// String is not Unicode-aware. Every case-insensitive operation folds bytes
// with the ASCII tolower/toupper tables only; bytes >= 0x80 pass through.
//
// A String owns its bytes and always keeps a NUL byte just past the logical
// end, so CStr can hand the content to C-style consumers without copying.
// Like bytes.Buffer, a String must not be copied by value after first use;
// use Clone for an independent copy and Move to hand off ownership.
package bytestring

import (
	"bytes"
	"slices"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// String is a mutable byte string. The zero value is an empty string ready
// to use.
type String struct {
	b []byte
}

// New returns a String holding a copy of s.
func New(s string) *String {
	r := &String{}
	r.AssignString(s)
	return r
}

// FromBytes returns a String holding a copy of p.
func FromBytes(p []byte) *String {
	r := &String{}
	r.Assign(p)
	return r
}

// FromRange returns a String holding a copy of p[begin:end].
func FromRange(p []byte, begin, end int) *String {
	if begin < 0 || end < begin || end > len(p) {
		panic(errors.AssertionFailedf("bytestring: range [%d:%d] out of bounds for length %d", begin, end, len(p)))
	}
	return FromBytes(p[begin:end])
}

// FromCString returns a String holding the bytes of p up to, not
// including, the first NUL. A nil p yields an empty String.
func FromCString(p []byte) *String {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return FromBytes(p)
}

// Repeat returns a String of count copies of fill.
func Repeat(count int, fill byte) *String {
	r := &String{}
	r.ResizeFill(count, fill)
	return r
}

// Clone returns an independent copy of s.
func (s *String) Clone() *String {
	return FromBytes(s.b)
}

// Move transfers the buffer of s to a new String and leaves s empty.
func (s *String) Move() *String {
	m := &String{b: s.b}
	s.b = nil
	return m
}

// Len returns the number of bytes in s, not counting the terminator.
func (s *String) Len() int { return len(s.b) }

// Cap returns the capacity of the underlying buffer.
func (s *String) Cap() int { return cap(s.b) }

// IsEmpty reports whether s has no bytes.
func (s *String) IsEmpty() bool { return len(s.b) == 0 }

// At returns the byte at index i. It panics if i is out of range.
func (s *String) At(i int) byte {
	checkIndex(i, len(s.b))
	return s.b[i]
}

// Set overwrites the byte at index i. It panics if i is out of range.
func (s *String) Set(i int, c byte) {
	checkIndex(i, len(s.b))
	s.b[i] = c
}

// First returns the first byte. It panics if s is empty.
func (s *String) First() byte { return s.At(0) }

// Last returns the last byte. It panics if s is empty.
func (s *String) Last() byte { return s.At(len(s.b) - 1) }

// Data returns the content as a mutable slice, valid until the next
// mutation. Its capacity is capped at its length so appending to it never
// writes over s.
func (s *String) Data() []byte {
	return s.b[:len(s.b):len(s.b)]
}

// Bytes returns the content, valid until the next mutation. The caller
// must not modify it.
func (s *String) Bytes() []byte {
	return s.b[:len(s.b):len(s.b)]
}

// String returns a copy of the content.
func (s *String) String() string {
	return string(s.b)
}

// CStr returns the content followed by its NUL terminator.
func (s *String) CStr() []byte {
	s.terminate()
	n := len(s.b)
	return s.b[: n+1 : n+1]
}

// view returns the content as a string sharing the buffer. It must not
// outlive the next mutation.
func (s *String) view() string {
	return unsafe.String(unsafe.SliceData(s.b), len(s.b))
}

// Assign replaces the content with a copy of p.
func (s *String) Assign(p []byte) {
	s.b = s.b[:0]
	s.grow(len(p))
	s.b = append(s.b, p...)
	s.terminate()
}

// AssignString replaces the content with a copy of x.
func (s *String) AssignString(x string) {
	s.b = s.b[:0]
	s.grow(len(x))
	s.b = append(s.b, x...)
	s.terminate()
}

// Append appends p.
func (s *String) Append(p []byte) {
	s.grow(len(p))
	s.b = append(s.b, p...)
	s.terminate()
}

// AppendString appends x.
func (s *String) AppendString(x string) {
	s.grow(len(x))
	s.b = append(s.b, x...)
	s.terminate()
}

// AppendByte appends c.
func (s *String) AppendByte(c byte) {
	s.grow(1)
	s.b = append(s.b, c)
	s.terminate()
}

// Write appends p and always succeeds. It makes String an io.Writer.
func (s *String) Write(p []byte) (int, error) {
	s.Append(p)
	return len(p), nil
}

// WriteString appends x and always succeeds.
func (s *String) WriteString(x string) (int, error) {
	s.AppendString(x)
	return len(x), nil
}

// WriteByte appends c and always succeeds.
func (s *String) WriteByte(c byte) error {
	s.AppendByte(c)
	return nil
}

// Prepend inserts p at the front.
func (s *String) Prepend(p []byte) { s.Insert(0, p) }

// PrependString inserts x at the front.
func (s *String) PrependString(x string) { s.InsertString(0, x) }

// PrependByte inserts c at the front.
func (s *String) PrependByte(c byte) { s.InsertByte(0, c) }

// Insert inserts p before index pos. It panics if pos > Len().
func (s *String) Insert(pos int, p []byte) {
	checkPos(pos, len(s.b))
	s.grow(len(p))
	s.b = slices.Insert(s.b, pos, p...)
	s.terminate()
}

// InsertString inserts x before index pos. It panics if pos > Len().
func (s *String) InsertString(pos int, x string) {
	s.Insert(pos, unsafe.Slice(unsafe.StringData(x), len(x)))
}

// InsertByte inserts c before index pos. It panics if pos > Len().
func (s *String) InsertByte(pos int, c byte) {
	checkPos(pos, len(s.b))
	s.grow(1)
	s.b = slices.Insert(s.b, pos, c)
	s.terminate()
}

// Remove deletes count bytes starting at idx. count is clamped to the
// bytes available. It panics if idx > Len() or count < 0.
func (s *String) Remove(idx, count int) {
	checkPos(idx, len(s.b))
	checkSize(count)
	end := idx + min(count, len(s.b)-idx)
	s.b = slices.Delete(s.b, idx, end)
	s.terminate()
}

// Resize sets the length to exactly n, truncating or zero-filling.
func (s *String) Resize(n int) {
	s.ResizeFill(n, 0)
}

// ResizeFill sets the length to exactly n, truncating or growing with fill.
func (s *String) ResizeFill(n int, fill byte) {
	checkSize(n)
	old := len(s.b)
	if n > old {
		s.grow(n - old)
	}
	s.b = s.b[:n]
	for i := old; i < n; i++ {
		s.b[i] = fill
	}
	s.terminate()
}

// Reserve makes room for at least n bytes without changing the length.
func (s *String) Reserve(n int) {
	checkSize(n)
	if n > len(s.b) {
		s.grow(n - len(s.b))
	}
}

// Truncate shortens s to n bytes. It does nothing if s is not longer.
func (s *String) Truncate(n int) {
	checkSize(n)
	if n < len(s.b) {
		s.b = s.b[:n]
		s.terminate()
	}
}

// Chop removes n bytes from the end. It panics if n > Len().
func (s *String) Chop(n int) {
	checkPos(n, len(s.b))
	s.b = s.b[:len(s.b)-n]
	s.terminate()
}

// Clear empties s, keeping its buffer.
func (s *String) Clear() {
	s.b = s.b[:0]
	s.terminate()
}

// setBytes adopts b as the buffer.
func (s *String) setBytes(b []byte) {
	s.b = b
	s.terminate()
}

// grow makes room for n more bytes plus the terminator.
func (s *String) grow(n int) {
	checkSize(n)
	need := len(s.b) + n + 1
	if need <= cap(s.b) {
		return
	}
	nb := make([]byte, len(s.b), max(need, 2*cap(s.b)))
	copy(nb, s.b)
	s.b = nb
}

// terminate writes the NUL after the logical end.
func (s *String) terminate() {
	n := len(s.b)
	if n == cap(s.b) {
		s.grow(0)
	}
	s.b[:n+1][n] = 0
}

func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(errors.AssertionFailedf("bytestring: index %d out of range [0:%d]", i, n))
	}
}

func checkPos(i, n int) {
	if uint(i) > uint(n) {
		panic(errors.AssertionFailedf("bytestring: position %d out of range [0:%d]", i, n))
	}
}

func checkSize(n int) {
	if n < 0 {
		panic(errors.AssertionFailedf("bytestring: negative size %d", n))
	}
}
