package bytestring

import (
	"math/bits"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// DefaultPrecision is the number of fractional digits NumberFloat uses for
// a negative precision.
const DefaultPrecision = 2

// Number renders v in base 10, 16 (with a 0x prefix), 8, or 1. Base 1 is
// binary written least significant bit first, so 6 renders as "011" and 0
// renders as "". Bases 16, 8 and 1 print negative values as their 64-bit
// two's complement. Any other base panics.
func Number[T constraints.Integer](v T, base int) *String {
	if ^T(0) < 0 {
		return formatBits(uint64(int64(v)), int64(v) < 0, base)
	}
	return formatBits(uint64(v), false, base)
}

func formatBits(u uint64, neg bool, base int) *String {
	var buf [24]byte
	switch base {
	case 10:
		if neg {
			return FromBytes(strconv.AppendInt(buf[:0], int64(u), 10))
		}
		return FromBytes(strconv.AppendUint(buf[:0], u, 10))
	case 16:
		return FromBytes(strconv.AppendUint(append(buf[:0], "0x"...), u, 16))
	case 8:
		return FromBytes(strconv.AppendUint(buf[:0], u, 8))
	case 1:
		out := &String{}
		out.Reserve(bits.Len64(u))
		for ; u != 0; u >>= 1 {
			out.AppendByte('0' + byte(u&1))
		}
		return out
	}
	panic(errors.AssertionFailedf("bytestring: unsupported number base %d", base))
}

// NumberFloat renders v in fixed-point notation with prec fractional
// digits, or DefaultPrecision when prec is negative.
func NumberFloat(v float64, prec int) *String {
	if prec < 0 {
		prec = DefaultPrecision
	}
	var buf [32]byte
	return FromBytes(strconv.AppendFloat(buf[:0], v, 'f', prec, 64))
}
