// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

type roundMode int

const (
	roundTrunc roundMode = iota
	roundFloor
	roundCeil
	roundHalfAway
	roundHalfEven
)

// Trunc returns the integer value of f, rounded towards zero.
func (f Float) Trunc() Float {
	return roundInt(f, roundTrunc)
}

// Floor returns the greatest integer value less than or equal to f.
func (f Float) Floor() Float {
	return roundInt(f, roundFloor)
}

// Ceil returns the least integer value greater than or equal to f.
func (f Float) Ceil() Float {
	return roundInt(f, roundCeil)
}

// Round returns the nearest integer, rounding half away from zero.
func (f Float) Round() Float {
	return roundInt(f, roundHalfAway)
}

// RoundToEven returns the nearest integer, rounding ties to even.
func (f Float) RoundToEven() Float {
	return roundInt(f, roundHalfEven)
}

// roundInt works on the bit pattern directly: the fraction bits of the mantissa
// are cleared, and, if needed, the magnitude is incremented by one unit.
// A carry from the mantissa into the exponent gives the right next power of two.
// The sign is always kept, so that, for example, Ceil(-0.5) is -0.
func roundInt(f Float, mode roundMode) Float {
	if f.IsNaN() {
		return quiet(f)
	}
	e := exp(f) - bias
	if e >= mantBits || f.IsZero() {
		return f
	}
	neg := isNeg(f)
	mag := f &^ signMask
	if e < 0 {
		// 0 < |f| < 1.
		var up bool
		switch mode {
		case roundFloor:
			up = neg
		case roundCeil:
			up = !neg
		case roundHalfAway:
			up = mag >= Half
		case roundHalfEven:
			up = mag > Half
		}
		if up {
			return signed(neg, One)
		}
		return signed(neg, Zero)
	}
	fracMask := Float(mantMask >> uint(e))
	frac := mag & fracMask
	if frac == 0 {
		return f
	}
	unit := fracMask + 1
	half := unit >> 1
	var up bool
	switch mode {
	case roundFloor:
		up = neg
	case roundCeil:
		up = !neg
	case roundHalfAway:
		up = frac >= half
	case roundHalfEven:
		odd := (mant(f)|implicitBit)>>uint(mantBits-e)&1 == 1
		up = frac > half || frac == half && odd
	}
	if up {
		mag += unit
	}
	return signed(neg, mag&^fracMask)
}
