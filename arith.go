// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"github.com/avdva/softfloat/internal/mathutil"
)

const (
	// mantissas are moved to bit 61 before addition, leaving room for the carry
	// and 38 bits for the aligned addend.
	addShift = 61 - mantBits
	// the dividend is scaled to 2^63..2^64, so that the quotient has 40 or 41 bits.
	divShift = 63 - mantBits
	// the largest scale Ldexp needs: it moves the smallest subnormal above MaxValue.
	maxScale = 2 * (maxExp + mantBits)
)

// Neg returns -f. Only the sign bit is flipped, so a NaN stays a NaN with its payload.
func (f Float) Neg() Float {
	return f ^ signMask
}

// Abs returns |f|. Only the sign bit is cleared.
func (f Float) Abs() Float {
	return f &^ signMask
}

// CopySign returns a value with the magnitude of f and the sign of sign.
func (f Float) CopySign(sign Float) Float {
	return f&^signMask | sign&signMask
}

// Add returns f + other.
// If any of the operands is a NaN, the first NaN is returned as a quiet NaN.
// Inf - Inf is NaN. The sum of two values of opposite signs and equal magnitudes is +0.
func (f Float) Add(other Float) Float {
	if f.IsNaN() || other.IsNaN() {
		return propagateNaN(f, other)
	}
	return add(f, other)
}

// Sub returns f - other.
func (f Float) Sub(other Float) Float {
	if f.IsNaN() || other.IsNaN() {
		return propagateNaN(f, other)
	}
	return add(f, other.Neg())
}

func add(x, y Float) Float {
	xInf, yInf := !x.IsFinite(), !y.IsFinite()
	switch {
	case xInf && yInf:
		if isNeg(x) != isNeg(y) {
			return NaN
		}
		return x
	case xInf:
		return x
	case yInf:
		return y
	}
	if y.IsZero() {
		if x.IsZero() {
			// -0 + -0 is the only way to get -0.
			return x & y
		}
		return x
	}
	if x.IsZero() {
		return y
	}
	if x.Abs() < y.Abs() {
		x, y = y, x
	}
	neg, ex, mx := unpack(x)
	yNeg, ey, my := unpack(y)
	xm := uint64(mx) << addShift
	ym := mathutil.ShiftRightSticky(uint64(my)<<addShift, uint(ex-ey))
	if neg == yNeg {
		xm += ym
	} else {
		xm -= ym
		if xm == 0 {
			return Zero
		}
	}
	return roundPack(neg, ex-addShift, xm)
}

// Mul returns f * other.
// 0 * Inf is NaN. The sign of the result is the XOR of the operands' signs.
func (f Float) Mul(other Float) Float {
	if f.IsNaN() || other.IsNaN() {
		return propagateNaN(f, other)
	}
	neg := isNeg(f) != isNeg(other)
	switch {
	case !f.IsFinite() || !other.IsFinite():
		if f.IsZero() || other.IsZero() {
			return NaN
		}
		return signed(neg, Inf)
	case f.IsZero() || other.IsZero():
		return signed(neg, Zero)
	}
	_, ex, mx := unpack(f)
	_, ey, my := unpack(other)
	return roundPack(neg, ex+ey, uint64(mx)*uint64(my))
}

// Div returns f / other.
// 0/0 and Inf/Inf are NaN. A non-zero value divided by zero is an infinity
// with the sign being the XOR of the operands' signs.
func (f Float) Div(other Float) Float {
	if f.IsNaN() || other.IsNaN() {
		return propagateNaN(f, other)
	}
	neg := isNeg(f) != isNeg(other)
	fInf, oInf := !f.IsFinite(), !other.IsFinite()
	switch {
	case fInf && oInf:
		return NaN
	case fInf:
		return signed(neg, Inf)
	case oInf:
		return signed(neg, Zero)
	case other.IsZero():
		if f.IsZero() {
			return NaN
		}
		return signed(neg, Inf)
	case f.IsZero():
		return signed(neg, Zero)
	}
	_, ex, mx := unpack(f)
	_, ey, my := unpack(other)
	num := uint64(mx) << divShift
	q, r := num/uint64(my), num%uint64(my)
	return roundPackSticky(neg, ex-ey-divShift, q, r != 0)
}

// Mod returns the remainder of f / other, truncated towards zero.
// The result is exact and has the sign of f, like C's fmod.
// Mod returns NaN if other is zero, f is an infinity, or any of the operands is a NaN.
// If other is an infinity, f is returned.
func (f Float) Mod(other Float) Float {
	if f.IsNaN() || other.IsNaN() {
		return propagateNaN(f, other)
	}
	if !f.IsFinite() || other.IsZero() {
		return NaN
	}
	if !other.IsFinite() || f.IsZero() || f.Abs() < other.Abs() {
		return f
	}
	neg, ex, mx := unpack(f)
	_, ey, my := unpack(other)
	d := uint64(my)
	r := uint64(mx) % d
	// r < 2^24, so up to 40 bits can be shifted in at once.
	for diff := ex - ey; diff > 0 && r != 0; {
		step := diff
		if step > 40 {
			step = 40
		}
		r = (r << uint(step)) % d
		diff -= step
	}
	return roundPack(neg, ey, r)
}

// Rcp returns 1 / f.
func (f Float) Rcp() Float {
	return One.Div(f)
}

// Ldexp returns f * 2^exp.
// Results are rounded, so that scaling into the subnormal range may lose precision.
func (f Float) Ldexp(exp int) Float {
	if !f.IsFinite() || f.IsZero() {
		return f
	}
	if exp > maxScale {
		exp = maxScale
	} else if exp < -maxScale {
		exp = -maxScale
	}
	neg, e, m := unpack(f)
	return roundPack(neg, e+int32(exp), uint64(m))
}

// Frexp breaks f into a fraction in [0.5, 1) and a power of two, so that
// f == frac * 2^exp. The fraction has the sign of f.
// For zeros, infinities and NaNs, f itself and 0 are returned.
func (f Float) Frexp() (frac Float, exp int) {
	if !f.IsFinite() || f.IsZero() {
		return f, 0
	}
	neg, e, m := unpack(f)
	return combine(neg, bias-1, m), int(e) + mantBits + 1
}

func signed(neg bool, f Float) Float {
	if neg {
		return f | signMask
	}
	return f
}
