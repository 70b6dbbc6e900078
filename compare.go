// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

// ordered maps f to a signed integer, so that the integer order matches
// the order of the values. Both zeros are mapped to 0. f must not be a NaN.
func ordered(f Float) int32 {
	mag := int32(f &^ signMask)
	if isNeg(f) {
		return -mag
	}
	return mag
}

// Cmp compares f and other and returns:
//
//	-1 if f <  other
//	 0 if f == other
//	+1 if f >  other
//
// ok is false, if any of the values is a NaN. +0 and -0 are equal.
func (f Float) Cmp(other Float) (res int, ok bool) {
	if f.IsNaN() || other.IsNaN() {
		return 0, false
	}
	a, b := ordered(f), ordered(other)
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}

// TotalCmp compares f and other according to the IEEE-754 totalOrder predicate:
//
//	-NaN < -Inf < negative values < -0 < +0 < positive values < +Inf < +NaN.
//
// Unlike Cmp, it distinguishes zeros and NaNs, and can be used for sorting.
func (f Float) TotalCmp(other Float) int {
	// flipping all the bits of negative values and the sign bit of positive ones
	// gives patterns, ordered as unsigned integers.
	key := func(v Float) uint32 {
		if isNeg(v) {
			return ^uint32(v)
		}
		return uint32(v) | signMask
	}
	a, b := key(f), key(other)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Eq returns true if f == other. NaN is not equal to anything, including itself.
func (f Float) Eq(other Float) bool {
	res, ok := f.Cmp(other)
	return ok && res == 0
}

// Ne returns true if f != other. It is always true, if any of the operands is a NaN.
func (f Float) Ne(other Float) bool {
	return !f.Eq(other)
}

// Lt returns true if f < other.
func (f Float) Lt(other Float) bool {
	res, ok := f.Cmp(other)
	return ok && res < 0
}

// Le returns true if f <= other.
func (f Float) Le(other Float) bool {
	res, ok := f.Cmp(other)
	return ok && res <= 0
}

// Gt returns true if f > other.
func (f Float) Gt(other Float) bool {
	res, ok := f.Cmp(other)
	return ok && res > 0
}

// Ge returns true if f >= other.
func (f Float) Ge(other Float) bool {
	res, ok := f.Cmp(other)
	return ok && res >= 0
}

// Min returns the smaller of f and other.
// NaNs are avoided: if one of the operands is a NaN, the other one is returned.
// If both are NaNs, a quiet NaN is returned. Min(-0, +0) is -0.
func Min(f, other Float) Float {
	switch {
	case f.IsNaN() && other.IsNaN():
		return propagateNaN(f, other)
	case f.IsNaN():
		return other
	case other.IsNaN():
		return f
	case f.IsZero() && other.IsZero():
		return f | other
	case f.Lt(other):
		return f
	default:
		return other
	}
}

// Max returns the larger of f and other.
// NaNs are avoided the same way as in Min. Max(-0, +0) is +0.
func Max(f, other Float) Float {
	switch {
	case f.IsNaN() && other.IsNaN():
		return propagateNaN(f, other)
	case f.IsNaN():
		return other
	case other.IsNaN():
		return f
	case f.IsZero() && other.IsZero():
		return f & other
	case f.Gt(other):
		return f
	default:
		return other
	}
}

// Clamp returns f limited to [lo, hi], which is Min(Max(f, lo), hi).
// A NaN is clamped to lo. If lo > hi, hi is returned.
func Clamp(f, lo, hi Float) Float {
	return Min(Max(f, lo), hi)
}

// Min returns the smaller of f and other. See the package-level Min.
func (f Float) Min(other Float) Float {
	return Min(f, other)
}

// Max returns the larger of f and other. See the package-level Max.
func (f Float) Max(other Float) Float {
	return Max(f, other)
}

// Clamp returns f limited to [lo, hi]. See the package-level Clamp.
func (f Float) Clamp(lo, hi Float) Float {
	return Clamp(f, lo, hi)
}
