// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math/bits"

	"github.com/avdva/softfloat/internal/mathutil"
)

const (
	// the mantissa is scaled up to 2^61..2^63 before taking the integer root,
	// which gives a root of 31 or 32 bits.
	sqrtShift = 38
	// Rsqrt takes the root of 2^rsqrtShift / m, which is in (2^61, 2^63]
	// for m in [2^23, 2^25).
	rsqrtShift = 86
)

// Sqrt returns the correctly rounded square root of f.
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func (f Float) Sqrt() Float {
	switch {
	case f.IsNaN():
		return quiet(f)
	case f.IsZero() || f == Inf:
		return f
	case isNeg(f):
		return NaN
	}
	_, e, m := unpack(f)
	wide := uint64(m)
	if e&1 != 0 {
		wide <<= 1
		e--
	}
	root, exact := mathutil.Isqrt64(wide << sqrtShift)
	return roundPackSticky(false, (e-sqrtShift)/2, root, !exact)
}

// Rsqrt returns the correctly rounded 1 / sqrt(f).
// The result is rounded once, so it may differ from One.Div(f.Sqrt()).
//
//	Rsqrt(±0) = ±Inf
//	Rsqrt(+Inf) = +0
//	Rsqrt(x < 0) = NaN
//	Rsqrt(NaN) = NaN
func (f Float) Rsqrt() Float {
	switch {
	case f.IsNaN():
		return quiet(f)
	case f.IsZero():
		return signed(isNeg(f), Inf)
	case f == Inf:
		return Zero
	case isNeg(f):
		return NaN
	}
	_, e, m := unpack(f)
	wide := uint64(m)
	if e&1 != 0 {
		wide <<= 1
		e--
	}
	// 1/sqrt(wide * 2^e) = sqrt(2^rsqrtShift / wide) * 2^(-rsqrtShift/2 - e/2).
	q, rem := bits.Div64(1<<(rsqrtShift-64), 0, wide)
	root, exact := mathutil.Isqrt64(q)
	return roundPackSticky(false, -rsqrtShift/2-e/2, root, rem != 0 || !exact)
}
