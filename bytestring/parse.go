package bytestring

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

var (
	// ErrSyntax means the input is empty or has bytes that are not digits.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange means the value does not fit the requested size.
	ErrRange = errors.New("value out of range")
	// ErrBase means the base is neither 0 nor in 2..36.
	ErrBase = errors.New("invalid base")
)

// ToLongLong parses s as a signed 64-bit integer following strtoll: leading
// ASCII whitespace, an optional sign, base 0 detecting 0x and 0 prefixes,
// base 16 accepting 0x. ok is true only when all of s was consumed without
// overflow. On overflow the value is clamped; on trailing garbage it is the
// value of the leading digits.
func (s *String) ToLongLong(base int) (int64, bool) {
	r := scanInteger(s.view(), base)
	v, inRange := r.signed(64)
	return v, inRange && r.complete(len(s.b))
}

// ToULongLong is the unsigned form of ToLongLong, following strtoull: a
// leading minus negates the value modulo 2^64.
func (s *String) ToULongLong(base int) (uint64, bool) {
	r := scanInteger(s.view(), base)
	v, inRange := r.unsigned(64)
	return v, inRange && r.complete(len(s.b))
}

// ToLong is ToLongLong with 32-bit limits.
func (s *String) ToLong(base int) (int32, bool) {
	r := scanInteger(s.view(), base)
	v, inRange := r.signed(32)
	return int32(v), inRange && r.complete(len(s.b))
}

// ToULong is ToULongLong with 32-bit limits.
func (s *String) ToULong(base int) (uint32, bool) {
	r := scanInteger(s.view(), base)
	v, inRange := r.unsigned(32)
	return uint32(v), inRange && r.complete(len(s.b))
}

// ParseInt parses s like ToLongLong but reports failure as an error
// wrapping ErrSyntax, ErrRange or ErrBase. bitSize is 8, 16, 32 or 64.
// The value is 0 on failure.
func (s *String) ParseInt(base, bitSize int) (int64, error) {
	r, err := s.scanStrict(base, bitSize)
	if err != nil {
		return 0, err
	}
	v, inRange := r.signed(bitSize)
	if !inRange {
		return 0, errors.Wrapf(ErrRange, "parse %q as int%d", s.view(), bitSize)
	}
	return v, nil
}

// ParseUint is the unsigned form of ParseInt. A leading minus is a syntax
// error.
func (s *String) ParseUint(base, bitSize int) (uint64, error) {
	r, err := s.scanStrict(base, bitSize)
	if err != nil {
		return 0, err
	}
	if r.neg {
		return 0, errors.Wrapf(ErrSyntax, "parse %q as uint%d: negative value", s.view(), bitSize)
	}
	v, inRange := r.unsigned(bitSize)
	if !inRange {
		return 0, errors.Wrapf(ErrRange, "parse %q as uint%d", s.view(), bitSize)
	}
	return v, nil
}

func (s *String) scanStrict(base, bitSize int) (scanResult, error) {
	switch bitSize {
	case 8, 16, 32, 64:
	default:
		panic(errors.AssertionFailedf("bytestring: invalid bit size %d", bitSize))
	}
	r := scanInteger(s.view(), base)
	switch {
	case r.badBase:
		return r, errors.Wrapf(ErrBase, "parse %q: base %d", s.view(), base)
	case !r.digits || r.end != len(s.b):
		return r, errors.Wrapf(ErrSyntax, "parse %q", s.view())
	}
	return r, nil
}

// scanResult is what a strtoull-style scan learned about its input.
type scanResult struct {
	mag      uint64 // magnitude, saturated once overflow is set
	neg      bool
	digits   bool
	overflow bool
	badBase  bool
	end      int // bytes consumed; 0 when no digits were found
}

// complete reports whether the scan consumed all n bytes of input. Input
// without digits consumes nothing, so only the empty string qualifies.
func (r scanResult) complete(n int) bool {
	return !r.badBase && r.end == n
}

func (r scanResult) signed(bitSize int) (int64, bool) {
	cutoff := uint64(1) << (bitSize - 1)
	if r.neg {
		if r.overflow || r.mag > cutoff {
			return -int64(cutoff), false
		}
		return -int64(r.mag), true
	}
	if r.overflow || r.mag > cutoff-1 {
		return int64(cutoff - 1), false
	}
	return int64(r.mag), true
}

func (r scanResult) unsigned(bitSize int) (uint64, bool) {
	limit := uint64(math.MaxUint64) >> (64 - bitSize)
	if r.overflow || r.mag > limit {
		return limit, false
	}
	if r.neg {
		return -r.mag & limit, true
	}
	return r.mag, true
}

func scanInteger(s string, base int) scanResult {
	var r scanResult
	if base != 0 && (base < 2 || base > 36) {
		r.badBase = true
		return r
	}

	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		r.neg = s[i] == '-'
		i++
	}
	hexPrefix := i+2 < len(s) && s[i] == '0' && s[i+1]|0x20 == 'x' && digitVal(s[i+2]) < 16
	switch {
	case (base == 0 || base == 16) && hexPrefix:
		base = 16
		i += 2
	case base == 0 && i < len(s) && s[i] == '0':
		base = 8
	case base == 0:
		base = 10
	}

	start := i
	for ; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= base {
			break
		}
		if r.overflow {
			continue
		}
		hi, lo := bits.Mul64(r.mag, uint64(base))
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			r.overflow = true
			r.mag = math.MaxUint64
			continue
		}
		r.mag = sum
	}
	if i == start {
		return scanResult{}
	}
	r.digits = true
	r.end = i
	return r
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c|0x20 && c|0x20 <= 'z':
		return int(c|0x20-'a') + 10
	}
	return 36
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
