// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"github.com/avdva/softfloat/internal/mathutil"
)

// fourOverPi holds the binary digits of 4/π: the integer part in the first word,
// followed by the fraction. This is enough to reduce MaxValue.
var fourOverPi = [...]uint64{
	0x0000000000000001,
	0x45f306dc9c882a53,
	0xf84eafa3ea69bb81,
	0xb6c52b3278872083,
	0xfca2c757bd778ac3,
	0x6e48dc74849ba5c0,
}

const (
	// π/4 as a 64-bit fixed-point fraction.
	piOver4Fixed = 0xC90FDAA22168C234
	// π/4 rounded to the nearest binary32 value.
	piOver4 = Float(0x3F490FDB)
)

// minimax coefficients on [-π/4, π/4].
const (
	sinC1 = Float(0xBE2AAAA3) // -1.6666654611e-1
	sinC2 = Float(0x3C08839E) // 8.3321608736e-3
	sinC3 = Float(0xB94CA1F9) // -1.9515295891e-4

	cosC1 = Float(0x3D2AAAA5) // 4.166664568e-2
	cosC2 = Float(0xBAB6061A) // -1.388731625e-3
	cosC3 = Float(0x37CCF5CE) // 2.443315712e-5
)

// asin coefficients on [0, 0.5].
var asinCoeffs = [...]Float{
	0x3D2CB352, // 4.2163199048e-2
	0x3CC617E3, // 2.4181311049e-2
	0x3D3A3EC7, // 4.5470025998e-2
	0x3D9980F6, // 7.4953002686e-2
	0x3E2AAAE4, // 1.6666752422e-1
}

// reduce returns j and r, such that |f| = (j*π/4 + r) mod 2π, with r in [-π/4, π/4].
// j is even and in [0, 6].
// f must be finite.
// The reduction is exact integer arithmetic against a long 4/π, so large
// arguments do not lose precision to cancellation.
func reduce(f Float) (j uint64, r Float) {
	f = f.Abs()
	if f < piOver4 {
		return 0, f
	}
	// |f| = m * 2^e, and m * 4/π is needed modulo 8, with the fraction of
	// at least 128 bits. Digits of 4/π above 2^(3-e) only add multiples of 8.
	_, e, m := unpack(f)
	start := int(61 + e)
	word, shift := start/64, uint(start%64)
	var w mathutil.Uint192
	for i := range w {
		w[i] = fourOverPi[word+i]<<shift | fourOverPi[word+i+1]>>(64-shift)
	}
	prod := mathutil.MulLow192(w, uint64(m))
	// the top 3 bits are the octant, the rest is the position inside it.
	j = prod[0] >> 61
	frac := prod.Lsh(3)
	var neg bool
	if j&1 == 1 {
		// move to the next octant and go backwards from it.
		frac = frac.Neg()
		neg = true
		j = (j + 1) & 7
	}
	if frac.IsZero() {
		return j, Zero
	}
	top, lz, sticky := frac.Normalize()
	hi, shift2, sticky2 := mathutil.Mul64Norm(top, piOver4Fixed)
	return j, roundPackSticky(neg, int32(-64-lz-shift2), hi, sticky || sticky2)
}

// sinPoly returns sin(r) for |r| <= π/4.
func sinPoly(r Float) Float {
	z := r.Mul(r)
	p := sinC3.Mul(z).Add(sinC2)
	p = p.Mul(z).Add(sinC1)
	p = p.Mul(z).Mul(r)
	return r.Add(p)
}

// cosPoly returns cos(r) for |r| <= π/4.
func cosPoly(r Float) Float {
	z := r.Mul(r)
	p := cosC3.Mul(z).Add(cosC2)
	p = p.Mul(z).Add(cosC1)
	p = p.Mul(z).Mul(z)
	return One.Sub(Half.Mul(z)).Add(p)
}

// SinCos returns Sin(f), Cos(f).
// Both results are within 2 ULP of the exact values.
// For infinities and NaNs both results are NaN.
func (f Float) SinCos() (sin, cos Float) {
	if !f.IsFinite() {
		if f.IsNaN() {
			return quiet(f), quiet(f)
		}
		return NaN, NaN
	}
	j, r := reduce(f)
	s, c := sinPoly(r), cosPoly(r)
	switch j >> 1 {
	case 0:
		sin, cos = s, c
	case 1:
		sin, cos = c, s.Neg()
	case 2:
		sin, cos = s.Neg(), c.Neg()
	default:
		sin, cos = c.Neg(), s
	}
	if isNeg(f) {
		sin = sin.Neg()
	}
	return sin, cos
}

// Sin returns the sine of f in radians. See SinCos.
func (f Float) Sin() Float {
	sin, _ := f.SinCos()
	return sin
}

// Cos returns the cosine of f in radians. See SinCos.
func (f Float) Cos() Float {
	_, cos := f.SinCos()
	return cos
}

// asinKernel returns asin(t) for |t| <= 0.5.
func asinKernel(t Float) Float {
	z := t.Mul(t)
	p := asinCoeffs[0]
	for _, c := range asinCoeffs[1:] {
		p = p.Mul(z).Add(c)
	}
	return p.Mul(z).Mul(t).Add(t)
}

// halfComplementRoot returns Sqrt((1 - t) / 2).
func halfComplementRoot(t Float) Float {
	return Half.Mul(One.Sub(t)).Sqrt()
}

// Asin returns the arcsine of f in radians, in [-π/2, π/2].
// The result is within 3 ULP of the exact value.
// If |f| > 1, Asin returns NaN.
func (f Float) Asin() Float {
	if f.IsNaN() {
		return quiet(f)
	}
	a := f.Abs()
	if a.Gt(One) {
		return NaN
	}
	var res Float
	if a.Gt(Half) {
		res = HalfPi.Sub(Two.Mul(asinKernel(halfComplementRoot(a))))
	} else {
		res = asinKernel(a)
	}
	return res.CopySign(f)
}

// Acos returns the arccosine of f in radians, in [0, π].
// The result is within 2 ULP of the exact value.
// If |f| > 1, Acos returns NaN.
func (f Float) Acos() Float {
	switch {
	case f.IsNaN():
		return quiet(f)
	case f.Abs().Gt(One):
		return NaN
	case f.Gt(Half):
		return Two.Mul(asinKernel(halfComplementRoot(f)))
	case f.Lt(Half.Neg()):
		return Pi.Sub(Two.Mul(asinKernel(halfComplementRoot(f.Neg()))))
	default:
		return HalfPi.Sub(asinKernel(f))
	}
}
