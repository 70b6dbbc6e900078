// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"github.com/avdva/softfloat/internal/mathutil"
)

const (
	// a normalized 64-bit mantissa keeps the 24 significant bits on top,
	// and the rest are guard, round and sticky bits.
	extraBits = 64 - mantBits - 1
	// the smallest exponent a subnormal quantum can have.
	minQuantumExp = minNormalExp - mantBits
)

// roundPack returns the value nearest to (-1)^neg * m * 2^e, rounding ties to even.
// The lowest bit of m may be a sticky bit, accumulated from precision lost
// by the caller. In that case m must have at least mantBits+3 significant bits,
// so that the sticky bit stays below the guard and round bits.
//
// All the arithmetic finally goes through roundPack.
// It handles mantissa overflow after rounding, subnormal results,
// subnormals rounding up to MinNormal, and overflows to infinity.
func roundPack(neg bool, e int32, m uint64) Float {
	var sign Float
	if neg {
		sign = signMask
	}
	if m == 0 {
		return sign
	}
	m, lz := mathutil.Normalize64(m)
	e -= int32(lz)
	// now m is in [2^63, 2^64), and the value is m * 2^e.
	// the exponent of the leading bit is e+63.
	biased := e + 63 + bias
	if biased >= maxExp {
		return sign | Inf
	}
	shift := int32(extraBits)
	if biased <= 0 {
		// a subnormal result: the quantum is fixed at 2^minQuantumExp.
		shift += 1 - biased
		biased = 0
	}
	var q, rem, half uint64
	switch {
	case shift < 64:
		q = m >> uint(shift)
		rem = m & (1<<uint(shift) - 1)
		half = 1 << uint(shift-1)
	case shift == 64:
		q, rem, half = 0, m, 1<<63
	default:
		// below half of the smallest subnormal.
		return sign
	}
	if rem > half || rem == half && q&1 == 1 {
		q++
	}
	if biased == 0 {
		// q is at most 2^23, which is exactly the pattern of MinNormal.
		return sign | Float(q)
	}
	if q == 1<<(mantBits+1) {
		q >>= 1
		biased++
		if biased >= maxExp {
			return sign | Inf
		}
	}
	return sign | Float(uint32(biased)<<mantBits) | Float(q&mantMask)
}

// roundPackSticky is roundPack for a value of m * 2^e plus a positive
// amount, smaller than 2^e, which is reported by sticky.
func roundPackSticky(neg bool, e int32, m uint64, sticky bool) Float {
	if sticky {
		m |= 1
	}
	return roundPack(neg, e, m)
}
