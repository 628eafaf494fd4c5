package ascii

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode"

	segAscii "github.com/segmentio/asm/ascii"
)

// indexFoldGo is the reference case-insensitive search: first byte filter,
// full verification on every candidate.
func indexFoldGo(s, substr string) int {
	if len(substr) == 0 {
		return 0
	} else if len(substr) > len(s) {
		return -1
	}

	first := toLower(substr[0])
	for i := 0; i <= len(s)-len(substr); i++ {
		if toLower(s[i]) == first && equalFoldGo(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

func makeASCII(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rand.Uint32() & 0x7f)
	}
	return data
}

type ValidTest struct {
	in  string
	exp bool
}

var validTests = []ValidTest{
	{"", true},
	{"a", true},
	{"abc", true},
	{"Ж", false},
	{"ЖЖ", false},
	{"брэд-ЛГТМ", false},
	{"☺☻☹", false},
	{"aa\xe2", false},
	{string([]byte{66, 250}), false},
	{string([]byte{66, 250, 67}), false},
	{"a\uFFFDb", false},
	{"\xF4\x8F\xBF\xBF", false},
	{"\xc0\x80", false},
	{"hellowo\xff", false},
	{"hellowor", true},
}

func TestAscii(t *testing.T) {
	for _, vt := range validTests {
		if ValidString(vt.in) != vt.exp {
			t.Errorf("ValidString(%q) = %v; want %v", vt.in, !vt.exp, vt.exp)
		}
	}

	for _, vt := range validTests {
		pt := "0123456789ab0123456789ab0123456789ab" + vt.in
		if ValidString(pt) != vt.exp {
			t.Errorf("ValidString(%q) = %v; want %v", pt, !vt.exp, vt.exp)
		}
		if got := segAscii.ValidString(pt); got != vt.exp {
			t.Errorf("segment ValidString(%q) = %v; want %v", pt, got, vt.exp)
		}
	}
}

func TestIndexMask(t *testing.T) {
	for i := 4; i < 1600; i++ {
		data := makeASCII(i)
		if !ValidString(string(data)) {
			t.Errorf("ValidString(%q) = false; want true", data)
		}
		if res := IndexMask(string(data), 0x80); res != -1 {
			t.Errorf("IndexMask([%d]) = %d; want %d", len(data), res, -1)
		}

		idx := rand.Intn(i)
		data[idx] |= 0x80
		if ValidString(string(data)) {
			t.Errorf("ValidString(%q) = true; want false", data)
		}
		if res := IndexMask(string(data), 0x80); res != idx {
			t.Errorf("IndexMask([%d]) = %d; want %d", len(data), res, idx)
		}
	}
}

func TestIndexFold(t *testing.T) {
	containsTests := []struct {
		str, substr string
		expected    bool
	}{
		{"abc", "bc", true},
		{"abc", "bcd", false},
		{"abc", "", true},
		{"", "a", false},
		{"0123abcd", "B", true},
		{"ABC", "abc", true},
		{"xxAbCxx", "aBc", true},
		// 2-byte needle
		{"xxxxxx", "01", false},
		{"01xxxx", "01", true},
		{"xx01xx", "01", true},
		{"xxxx01", "01", true},
		{"01xxxxx"[1:], "01", false},
		{"xxxxx01"[:6], "01", false},
		// 3-byte needle
		{"xxxxxxx", "012", false},
		{"012xxxx", "012", true},
		{"xx012xx", "012", true},
		{"xxxx012", "012", true},
		{"012xxxxx"[1:], "012", false},
		{"xxxxx012"[:7], "012", false},
		// 8-byte needle
		{"xxxxxxxxxxxx", "01234567", false},
		{"01234567xxxx", "01234567", true},
		{"xx01234567xx", "01234567", true},
		{"xxxx01234567", "01234567", true},
		{"01234567xxxxx"[1:], "01234567", false},
		{"xxxxx01234567"[:12], "01234567", false},
		// 16-byte needle
		{"xxxxxxxxxxxxxxxxxxxx", "0123456789ABCDEF", false},
		{"0123456789abcdefxxxx", "0123456789ABCDEF", true},
		{"xx0123456789ABCDEFxx", "0123456789abcdef", true},
		{"xxxx0123456789ABCDEF", "0123456789ABCDEF", true},
		{"0123456789ABCDEFxxxxx"[1:], "0123456789ABCDEF", false},
		{"xxxxx0123456789ABCDEF"[:20], "0123456789ABCDEF", false},
		// partial match cases
		{"xx01x", "012", false},
		{"xx0123x", "01234", false},
		{"xx01234567x", "012345678", false},
		{"xx0123456789ABCDEFx", "0123456789ABCDEFG", false},
		{"aab", "ab", true},
		{"0101x340123401234xxxx", "01234", true},
		{"xyyyyyyyyyyyyyyyyxxxxxxxxxxxxxxx", "yyy", true},
		// fuzzed cases
		{"000", "0\x00", false},
		{"00000000000000000", "0`", false},
		{"0000", "\x00\x00\x00", false},
		{"@", "`", false},
		{"[\\]", "{|}", false},
	}

	for _, ct := range containsTests {
		idx := IndexFold(ct.str, ct.substr)
		if (idx != -1) != ct.expected {
			t.Errorf("IndexFold(%q, %q) = %v, want found=%v", ct.str, ct.substr, idx, ct.expected)
		}
		if want := indexFoldGo(ct.str, ct.substr); idx != want {
			t.Errorf("IndexFold(%q, %q) = %v, want %v", ct.str, ct.substr, idx, want)
		}
		if want := lastIndexFoldGo(ct.str, ct.substr); LastIndexFold(ct.str, ct.substr) != want {
			t.Errorf("LastIndexFold(%q, %q) = %v, want %v", ct.str, ct.substr, LastIndexFold(ct.str, ct.substr), want)
		}
	}
}

func TestIndexFoldRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	alphabet := "aAbB01-_"

	for i := 0; i < 2000; i++ {
		hay := make([]byte, rnd.Intn(64))
		for j := range hay {
			hay[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		needle := make([]byte, 1+rnd.Intn(5))
		for j := range needle {
			needle[j] = alphabet[rnd.Intn(len(alphabet))]
		}

		want := strings.Index(strings.ToLower(string(hay)), strings.ToLower(string(needle)))
		if got := IndexFold(string(hay), string(needle)); got != want {
			t.Fatalf("IndexFold(%q, %q) = %d, want %d", hay, needle, got, want)
		}
		want = strings.LastIndex(strings.ToLower(string(hay)), strings.ToLower(string(needle)))
		if got := LastIndexFold(string(hay), string(needle)); got != want {
			t.Fatalf("LastIndexFold(%q, %q) = %d, want %d", hay, needle, got, want)
		}
	}
}

func TestIndexByteFold(t *testing.T) {
	tests := []struct {
		s         string
		c         byte
		first, ls int
	}{
		{"", 'a', -1, -1},
		{"abcABC", 'a', 0, 3},
		{"abcABC", 'C', 2, 5},
		{"xxBxxb", 'b', 2, 5},
		{"xxbxxB", 'B', 2, 5},
		{"1-2-3", '-', 1, 3},
		{"\xc1\xe1", '\xe1', 1, 1},
		{"@`", '`', 1, 1},
	}

	for _, tt := range tests {
		if got := IndexByteFold(tt.s, tt.c); got != tt.first {
			t.Errorf("IndexByteFold(%q, %q) = %d, want %d", tt.s, tt.c, got, tt.first)
		}
		if got := LastIndexByteFold(tt.s, tt.c); got != tt.ls {
			t.Errorf("LastIndexByteFold(%q, %q) = %d, want %d", tt.s, tt.c, got, tt.ls)
		}
	}
}

func TestEqualFold(t *testing.T) {
	equalFoldTests := []struct {
		s, t string
		out  bool
	}{
		{"", "", true},
		{"abc", "abc", true},
		{"ABcd", "ABcd", true},
		{"123abc", "123ABC", true},
		{"abc", "xyz", false},
		{"abc", "XYZ", false},
		{"abcdefghijk", "abcdefghijX", false},
		{"1", "2", false},
		{"utf-8", "US-ASCII", false},
		{"hello", "Hello", true},
		{"@[`{", "`{@[", false},
		{"oh hello there!!", "oh hello there!!", true},
		{"oh hello there!!", "oh HELLO there!!", true},
		{"oh hello there!!", "oh HELLO there !", false},
		{"oh hello there!! friend!", "oh HELLO there!! FRIEND!", true},
		{strings.Repeat("oh hello there!! ", 4), strings.Repeat("OH HELLO THERE!! ", 4), true},
		{strings.Repeat("oh hello there!! ", 4), strings.Repeat("OH HELLO THERE!! ", 3) + "OH HELLO THERE!? ", false},
	}

	for _, tt := range equalFoldTests {
		if out := EqualFold(tt.s, tt.t); out != tt.out {
			t.Errorf("EqualFold(%#q, %#q) = %v, want %v", tt.s, tt.t, out, tt.out)
		}
		if out := EqualFold(tt.t, tt.s); out != tt.out {
			t.Errorf("EqualFold(%#q, %#q) = %v, want %v", tt.t, tt.s, out, tt.out)
		}
	}
}

func TestHasPrefixFold(t *testing.T) {
	tests := []struct {
		s, prefix string
		want      bool
	}{
		{"", "", true},
		{"abc", "", true},
		{"", "a", false},
		{"abc", "abc", true},
		{"abc", "a", true},
		{"ABC", "abc", true},
		{"Hello World", "hello", true},
		{"HeLLo", "hElLo", true},
		{"abc", "bc", false},
		{"abc", "abcd", false},
		{"abcdefghijklmnop", "ABCDEFGHIJKLMNOP", true},
		{"abcdefghijklmnop", "ABCDEFGHIJKLMNOPQ", false},
	}

	for _, tt := range tests {
		if got := HasPrefixFold(tt.s, tt.prefix); got != tt.want {
			t.Errorf("HasPrefixFold(%q, %q) = %v, want %v", tt.s, tt.prefix, got, tt.want)
		}
	}
}

func TestHasSuffixFold(t *testing.T) {
	tests := []struct {
		s, suffix string
		want      bool
	}{
		{"", "", true},
		{"abc", "", true},
		{"", "a", false},
		{"abc", "bc", true},
		{"Hello World", "WORLD", true},
		{"HeLLo", "hElLo", true},
		{"abc", "ab", false},
		{"abc", "zabc", false},
		{"abcdefghijklmnop", "IJKLMNOP", true},
		{"0123456789", "onal6789", false},
	}

	for _, tt := range tests {
		if got := HasSuffixFold(tt.s, tt.suffix); got != tt.want {
			t.Errorf("HasSuffixFold(%q, %q) = %v, want %v", tt.s, tt.suffix, got, tt.want)
		}
	}
}

func TestCaseMapping(t *testing.T) {
	for n := 0; n < 100; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(rand.Intn(256))
		}

		lower := make([]byte, n)
		ToLowerInto(lower, src)
		upper := make([]byte, n)
		ToUpperInto(upper, string(src))

		for i, c := range src {
			if lower[i] != Lower(c) {
				t.Fatalf("ToLowerInto: byte %d of %q = %q, want %q", i, src, lower[i], Lower(c))
			}
			if upper[i] != Upper(c) {
				t.Fatalf("ToUpperInto: byte %d of %q = %q, want %q", i, src, upper[i], Upper(c))
			}
		}
	}

	// in place
	b := []byte("Hello, World! 0123456789 \xc4\xe4")
	ToUpperInto(b, b)
	if want := "HELLO, WORLD! 0123456789 \xc4\xe4"; string(b) != want {
		t.Errorf("ToUpperInto in place = %q, want %q", b, want)
	}
	ToLowerInto(b, b)
	if want := "hello, world! 0123456789 \xc4\xe4"; string(b) != want {
		t.Errorf("ToLowerInto in place = %q, want %q", b, want)
	}
}

func TestLowerUpperHighBytes(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		wantLower, wantUpper := b, b
		if b >= 'A' && b <= 'Z' {
			wantLower = b + 32
		}
		if b >= 'a' && b <= 'z' {
			wantUpper = b - 32
		}
		if Lower(b) != wantLower || Upper(b) != wantUpper {
			t.Errorf("Lower/Upper(%#x) = %#x/%#x, want %#x/%#x", b, Lower(b), Upper(b), wantLower, wantUpper)
		}
	}
}

func BenchmarkAsciiValid(b *testing.B) {
	for _, n := range []int{1, 7, 15, 44, 100, 1000} {
		asciiBuf := makeASCII(n)
		asciiStr := string(asciiBuf)

		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(asciiStr)))
			for i := 0; i < b.N; i++ {
				isAsciiGo(asciiBuf)
			}
		})

		b.Run(fmt.Sprintf("segment-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(asciiStr)))
			for i := 0; i < b.N; i++ {
				segAscii.ValidString(asciiStr)
			}
		})

		b.Run(fmt.Sprintf("dispatch-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(asciiStr)))
			for i := 0; i < b.N; i++ {
				ValidString(asciiStr)
			}
		})
	}
}

func BenchmarkAsciiEqualFold(b *testing.B) {
	for _, n := range []int{1, 7, 15, 44, 100, 1000} {
		asciiBuf := makeASCII(n)
		s1 := string(asciiBuf)

		// try to flip at least one byte
		for k := 0; k < 3; k++ {
			idx := rand.Intn(n)
			if unicode.IsUpper(rune(asciiBuf[idx])) {
				asciiBuf[idx] = byte(unicode.ToLower(rune(asciiBuf[idx])))
			} else if unicode.IsLower(rune(asciiBuf[idx])) {
				asciiBuf[idx] = byte(unicode.ToUpper(rune(asciiBuf[idx])))
			}
		}
		s2 := string(asciiBuf)

		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s1)))
			for i := 0; i < b.N; i++ {
				equalFoldGo(s1, s2)
			}
		})

		b.Run(fmt.Sprintf("segment-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s1)))
			for i := 0; i < b.N; i++ {
				segAscii.EqualFoldString(s1, s2)
			}
		})

		b.Run(fmt.Sprintf("dispatch-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s1)))
			for i := 0; i < b.N; i++ {
				EqualFold(s1, s2)
			}
		})
	}
}

func BenchmarkToLower(b *testing.B) {
	for _, n := range []int{7, 44, 1000} {
		src := makeASCII(n)
		dst := make([]byte, n)

		b.Run(fmt.Sprintf("swar-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				ToLowerInto(dst, src)
			}
		})

		b.Run(fmt.Sprintf("stdlib-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				bytes.ToLower(src)
			}
		})
	}
}

var benchInputTorture = strings.Repeat("ABC", 1<<10) + "123" + strings.Repeat("ABC", 1<<10)
var benchNeedleTorture = strings.Repeat("ABC", 1<<10+1)

func BenchmarkIndexTorture(b *testing.B) {
	b.Run("stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			strings.Index(benchInputTorture, benchNeedleTorture)
		}
	})

	b.Run("fold", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			IndexFold(benchInputTorture, benchNeedleTorture)
		}
	})

	b.Run("fold-go", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			indexFoldGo(benchInputTorture, benchNeedleTorture)
		}
	})
}
