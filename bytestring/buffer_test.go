package bytestring

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertTerminated checks the NUL byte after the logical end.
func assertTerminated(t *testing.T, s *String) {
	t.Helper()
	require.Greater(t, s.Cap(), s.Len())
	assert.Equal(t, byte(0), s.b[:s.Len()+1][s.Len()])
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		name string
		got  *String
		want string
	}{
		{"New", New("hello"), "hello"},
		{"NewEmpty", New(""), ""},
		{"FromBytes", FromBytes([]byte("abc")), "abc"},
		{"FromBytesNil", FromBytes(nil), ""},
		{"FromRange", FromRange([]byte("abcdef"), 1, 4), "bcd"},
		{"FromRangeEmpty", FromRange([]byte("abc"), 2, 2), ""},
		{"FromCString", FromCString([]byte("abc\x00def")), "abc"},
		{"FromCStringNoNul", FromCString([]byte("abc")), "abc"},
		{"FromCStringNil", FromCString(nil), ""},
		{"Repeat", Repeat(3, 'z'), "zzz"},
		{"RepeatZero", Repeat(0, 'z'), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.String())
			assert.Equal(t, len(tc.want), tc.got.Len())
			assertTerminated(t, tc.got)
		})
	}
}

func TestFromRangePanics(t *testing.T) {
	assert.Panics(t, func() { FromRange([]byte("abc"), 2, 1) })
	assert.Panics(t, func() { FromRange([]byte("abc"), 0, 4) })
	assert.Panics(t, func() { FromRange([]byte("abc"), -1, 1) })
}

func TestZeroValue(t *testing.T) {
	var s String
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.String())
	assert.Equal(t, []byte{0}, s.CStr())
	s.AppendString("ok")
	assert.Equal(t, "ok", s.String())
	assertTerminated(t, &s)
}

func TestCloneAndMove(t *testing.T) {
	s := New("shared")
	c := s.Clone()
	c.Set(0, 'S')
	assert.Equal(t, "shared", s.String())
	assert.Equal(t, "Shared", c.String())

	m := s.Move()
	assert.Equal(t, "shared", m.String())
	assert.True(t, s.IsEmpty())
	s.AppendString("x")
	assert.Equal(t, "shared", m.String())
}

func TestAccessors(t *testing.T) {
	s := New("abc")
	assert.Equal(t, byte('a'), s.First())
	assert.Equal(t, byte('c'), s.Last())
	assert.Equal(t, byte('b'), s.At(1))
	s.Set(1, 'B')
	assert.Equal(t, "aBc", s.String())

	assert.Panics(t, func() { s.At(3) })
	assert.Panics(t, func() { s.At(-1) })
	assert.Panics(t, func() { s.Set(3, 'x') })
	assert.Panics(t, func() { New("").First() })
	assert.Panics(t, func() { New("").Last() })
}

func TestDataCannotClobberTerminator(t *testing.T) {
	s := New("abc")
	s.Reserve(64)
	d := s.Data()
	require.Equal(t, 3, cap(d))
	d[0] = 'x'
	d = append(d, 'y')
	assert.Equal(t, "xbc", s.String())
	assert.Equal(t, "xbcy", string(d))
	assertTerminated(t, s)
}

func TestCStr(t *testing.T) {
	s := New("abc")
	assert.Equal(t, []byte("abc\x00"), s.CStr())
	s.Truncate(1)
	assert.Equal(t, []byte("a\x00"), s.CStr())
	assert.True(t, s.EqualCString(s.CStr()))
}

func TestMutators(t *testing.T) {
	cases := []struct {
		name string
		init string
		op   func(s *String)
		want string
	}{
		{"Assign", "old", func(s *String) { s.Assign([]byte("new!")) }, "new!"},
		{"AssignString", "old", func(s *String) { s.AssignString("") }, ""},
		{"Append", "ab", func(s *String) { s.Append([]byte("cd")) }, "abcd"},
		{"AppendString", "ab", func(s *String) { s.AppendString("cd") }, "abcd"},
		{"AppendByte", "ab", func(s *String) { s.AppendByte('c') }, "abc"},
		{"AppendSelf", "ab", func(s *String) { s.Append(s.Bytes()) }, "abab"},
		{"Prepend", "cd", func(s *String) { s.Prepend([]byte("ab")) }, "abcd"},
		{"PrependString", "cd", func(s *String) { s.PrependString("ab") }, "abcd"},
		{"PrependByte", "bc", func(s *String) { s.PrependByte('a') }, "abc"},
		{"Insert", "ad", func(s *String) { s.Insert(1, []byte("bc")) }, "abcd"},
		{"InsertEnd", "ab", func(s *String) { s.Insert(2, []byte("cd")) }, "abcd"},
		{"InsertSelf", "ab", func(s *String) { s.Insert(1, s.Bytes()) }, "aabb"},
		{"InsertString", "ad", func(s *String) { s.InsertString(1, "bc") }, "abcd"},
		{"InsertByte", "ac", func(s *String) { s.InsertByte(1, 'b') }, "abc"},
		{"Remove", "abcdef", func(s *String) { s.Remove(1, 2) }, "adef"},
		{"RemoveClamped", "abcdef", func(s *String) { s.Remove(4, 100) }, "abcd"},
		{"RemoveMaxInt", "abcdef", func(s *String) { s.Remove(2, math.MaxInt) }, "ab"},
		{"RemoveAtEnd", "abc", func(s *String) { s.Remove(3, 1) }, "abc"},
		{"ResizeGrow", "ab", func(s *String) { s.Resize(4) }, "ab\x00\x00"},
		{"ResizeShrink", "abcd", func(s *String) { s.Resize(1) }, "a"},
		{"ResizeFill", "ab", func(s *String) { s.ResizeFill(5, '-') }, "ab---"},
		{"Truncate", "abcd", func(s *String) { s.Truncate(2) }, "ab"},
		{"TruncateLonger", "ab", func(s *String) { s.Truncate(10) }, "ab"},
		{"Chop", "abcd", func(s *String) { s.Chop(3) }, "a"},
		{"ChopAll", "abcd", func(s *String) { s.Chop(4) }, ""},
		{"Clear", "abcd", func(s *String) { s.Clear() }, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.init)
			tc.op(s)
			assert.Equal(t, tc.want, s.String())
			assertTerminated(t, s)
		})
	}
}

func TestResizeClearsStaleBytes(t *testing.T) {
	s := New("abcdef")
	s.Truncate(2)
	s.Resize(4)
	assert.Equal(t, "ab\x00\x00", s.String())
}

func TestReserve(t *testing.T) {
	s := New("ab")
	s.Reserve(100)
	assert.GreaterOrEqual(t, s.Cap(), 101)
	assert.Equal(t, "ab", s.String())
	assertTerminated(t, s)
}

func TestMutatorPanics(t *testing.T) {
	assert.Panics(t, func() { New("ab").Insert(3, []byte("x")) })
	assert.Panics(t, func() { New("ab").InsertByte(-1, 'x') })
	assert.Panics(t, func() { New("ab").Remove(3, 0) })
	assert.Panics(t, func() { New("ab").Remove(0, -1) })
	assert.Panics(t, func() { New("ab").Chop(3) })
	assert.Panics(t, func() { New("ab").Resize(-1) })
	assert.Panics(t, func() { New("ab").Reserve(-1) })
}

func TestWriter(t *testing.T) {
	s := New("n=")
	_, err := fmt.Fprintf(s, "%d", 42)
	require.NoError(t, err)
	require.NoError(t, s.WriteByte(';'))
	_, err = s.WriteString("end")
	require.NoError(t, err)
	assert.Equal(t, "n=42;end", s.String())
}

func TestGrowthKeepsTerminator(t *testing.T) {
	s := &String{}
	for i := 0; i < 1000; i++ {
		s.AppendByte(byte('a' + i%26))
		assertTerminated(t, s)
	}
	assert.Equal(t, 1000, s.Len())
}
