// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math"

	"github.com/avdva/softfloat/internal/mathutil"
)

// FromInt32 returns a value for the given integer.
// Integers with more than 24 significant bits are rounded to nearest, ties to even.
func FromInt32(i int32) Float {
	return FromInt64(int64(i))
}

// FromUint32 returns a value for the given unsigned integer.
// Integers with more than 24 significant bits are rounded to nearest, ties to even.
func FromUint32(u uint32) Float {
	return roundPack(false, 0, uint64(u))
}

// FromInt64 returns a value for the given integer, rounded to nearest, ties to even.
func FromInt64(i int64) Float {
	return roundPack(i < 0, 0, mathutil.AbsInt64(i))
}

// FromUint64 returns a value for the given unsigned integer, rounded to nearest, ties to even.
func FromUint64(u uint64) Float {
	return roundPack(false, 0, u)
}

// truncate returns |f| truncated towards zero as an integer.
// ok is false if the result does not fit into 64 bits.
func truncate(f Float) (neg bool, res uint64, ok bool) {
	neg, e, m := unpack(f)
	switch {
	case m == 0 || e <= -(mantBits+1):
		return neg, 0, true
	case e < 0:
		return neg, uint64(m) >> uint(-e), true
	case e <= 64-(mantBits+1):
		return neg, uint64(m) << uint(e), true
	default:
		return neg, 0, false
	}
}

// ToInt64 returns f truncated towards zero.
// Out of range values saturate to math.MinInt64 or math.MaxInt64. NaN gives 0.
func (f Float) ToInt64() int64 {
	if f.IsNaN() {
		return 0
	}
	if !f.IsFinite() {
		if isNeg(f) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	neg, u, ok := truncate(f)
	if neg {
		if !ok || u > 1<<63 {
			return math.MinInt64
		}
		return -int64(u)
	}
	if !ok || u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

// ToUint64 returns f truncated towards zero.
// Values above the range saturate to math.MaxUint64.
// NaN and every negative value, including -Inf, give 0.
func (f Float) ToUint64() uint64 {
	if f.IsNaN() || isNeg(f) {
		return 0
	}
	if !f.IsFinite() {
		return math.MaxUint64
	}
	_, u, ok := truncate(f)
	if !ok {
		return math.MaxUint64
	}
	return u
}

// ToInt32 returns f truncated towards zero.
// Out of range values saturate to math.MinInt32 or math.MaxInt32. NaN gives 0.
func (f Float) ToInt32() int32 {
	i := f.ToInt64()
	switch {
	case i < math.MinInt32:
		return math.MinInt32
	case i > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(i)
	}
}

// ToUint32 returns f truncated towards zero.
// Values above the range saturate to math.MaxUint32. NaN and negative values give 0.
func (f Float) ToUint32() uint32 {
	u := f.ToUint64()
	if u > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(u)
}

// FromFloat32 reinterprets a host float32. No arithmetic is performed.
func FromFloat32(v float32) Float {
	return Float(math.Float32bits(v))
}

// Float32 reinterprets f as a host float32. No arithmetic is performed.
func (f Float) Float32() float32 {
	return math.Float32frombits(uint32(f))
}

// FromFloat64 rounds a host float64 to the nearest value, ties to even.
// The conversion works on the bit pattern only, so it does not depend on the host FPU.
// NaN payloads are truncated, keeping the value quiet.
func FromFloat64(v float64) Float {
	const (
		f64MantBits = 52
		f64Bias     = 1023
		f64ExpMask  = 1<<11 - 1
		f64MantMask = 1<<f64MantBits - 1
	)
	b := math.Float64bits(v)
	neg := b>>63 != 0
	e := int32(b >> f64MantBits & f64ExpMask)
	m := b & f64MantMask
	switch {
	case e == f64ExpMask && m == 0:
		return signed(neg, Inf)
	case e == f64ExpMask:
		return signed(neg, Inf|quietBit|Float(m>>(f64MantBits-mantBits)))
	case e == 0 && m == 0:
		return signed(neg, Zero)
	case e == 0:
		// float64 subnormals are far below the float32 range.
		return roundPack(neg, 1-f64Bias-f64MantBits, m)
	default:
		return roundPack(neg, e-f64Bias-f64MantBits, m|1<<f64MantBits)
	}
}

// Float64 returns f as a host float64. The conversion is exact.
func (f Float) Float64() float64 {
	const f64Bias = 1023
	neg := uint64(f) >> 31 << 63
	switch {
	case f.IsNaN():
		return math.Float64frombits(neg | 0x7FF8000000000000 | uint64(mant(f))<<29)
	case !f.IsFinite():
		return math.Float64frombits(neg | 0x7FF0000000000000)
	case f.IsZero():
		return math.Float64frombits(neg)
	}
	_, e, m := unpack(f)
	// m has its leading bit at position 23, which becomes the implicit bit of the float64.
	be := uint64(e + mantBits + f64Bias)
	return math.Float64frombits(neg | be<<52 | (uint64(m)&mantMask)<<29)
}
