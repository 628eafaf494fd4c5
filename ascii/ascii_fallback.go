package ascii

import (
	"encoding/binary"
	"math/bits"
)

func load64[T string | []byte](s T) uint64 {
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask32 := uint32(mask)
	mask32 |= mask32 << 8
	mask32 |= mask32 << 16

	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		first32 := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		second32 := uint32(s[4]) | uint32(s[5])<<8 | uint32(s[6])<<16 | uint32(s[7])<<24
		if (first32|second32)&mask32 != 0 {
			first32 &= mask32
			if first32 != 0 {
				return pos + bits.TrailingZeros32(first32)/8
			}
			second32 &= mask32
			return pos + 4 + bits.TrailingZeros32(second32)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}

func isAsciiGo[T string | []byte](s T) bool {
	return indexMaskGo(s, 0x80) == -1
}

// hasBetween sets the high bit of every byte of x that lies strictly
// between m and n. Bytes >= 0x80 are never flagged.
// https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func hasBetween(x uint64, m, n uint64) uint64 {
	const mult = ^uint64(0) / 255

	A := mult * (127 + n)
	B := x & (mult * 127)
	C := ^x
	D := mult * (127 - m)
	return (A - B) & C & (B + D) & (mult * 128)
}

func hasLowercaseAsciiByte(x uint64) uint64 {
	return hasBetween(x, 'a'-1, 'z'+1)
}

func hasUppercaseAsciiByte(x uint64) uint64 {
	return hasBetween(x, 'A'-1, 'Z'+1)
}

// asciiFoldWord upper-cases every lowercase letter packed in x. A flagged
// byte carries 0x80, shifted down it is exactly the 0x20 case bit.
func asciiFoldWord(x uint64) uint64 {
	return x - hasLowercaseAsciiByte(x)>>2
}

func lowerWord(x uint64) uint64 {
	return x + hasUppercaseAsciiByte(x)>>2
}

func toLowerGo[T string | []byte](dst []byte, src T) {
	i := 0
	for ; len(src)-i >= 8; i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], lowerWord(load64(src[i:])))
	}
	for ; i < len(src); i++ {
		dst[i] = toLower(src[i])
	}
}

func toUpperGo[T string | []byte](dst []byte, src T) {
	i := 0
	for ; len(src)-i >= 8; i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], asciiFoldWord(load64(src[i:])))
	}
	for ; i < len(src); i++ {
		dst[i] = toUpper(src[i])
	}
}

func equalFoldGo(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for len(a) >= 8 {
		a64 := load64(a)
		b64 := load64(b)
		if a64 != b64 && asciiFoldWord(a64) != asciiFoldWord(b64) {
			return false
		}
		a = a[8:]
		b = b[8:]
	}

	var a0, a1, b0, b1 uint32
	switch len(a) {
	case 7, 6, 5:
		// two overlapping 32-bit loads
		_, _ = a[3], b[3]
		a0 = uint32(a[0]) | uint32(a[1])<<8 | uint32(a[2])<<16 | uint32(a[3])<<24
		b0 = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24

		idx := len(a) - 4
		a, b = a[idx:], b[idx:]
		_, _ = a[3], b[3]
		a1 = uint32(a[0]) | uint32(a[1])<<8 | uint32(a[2])<<16 | uint32(a[3])<<24
		b1 = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	case 4:
		_ = b[3]
		a0 = uint32(a[0]) | uint32(a[1])<<8 | uint32(a[2])<<16 | uint32(a[3])<<24
		b0 = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	case 3:
		_ = b[2]
		a0 = uint32(a[0]) | uint32(a[1])<<8 | uint32(a[2])<<16
		b0 = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	case 2:
		_ = b[1]
		a0 = uint32(a[0]) | uint32(a[1])<<8
		b0 = uint32(b[0]) | uint32(b[1])<<8
	case 1:
		a0 = uint32(a[0])
		b0 = uint32(b[0])
	case 0:
		return true
	}

	a64 := uint64(a0) | uint64(a1)<<32
	b64 := uint64(b0) | uint64(b1)<<32
	if a64 == b64 {
		return true
	}
	return asciiFoldWord(a64) == asciiFoldWord(b64)
}

func lastIndexFoldGo(s, substr string) int {
	if len(substr) == 0 {
		return len(s)
	} else if len(substr) > len(s) {
		return -1
	}

	first := toLower(substr[0])
	for i := len(s) - len(substr); i >= 0; i-- {
		if toLower(s[i]) == first && equalFoldGo(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
