// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

const (
	log2e = Float(0x3FB8AA3B) // 1.44269504

	// ln(2) split into a short high part, so that k*ln2Hi is exact for every k used by Exp,
	// and a low correction.
	ln2Hi = Float(0x3F318000) // 0.693359375
	ln2Lo = Float(0xB95E8083) // -2.12194440e-4

	// Exp(x) overflows above maxLog and underflows to zero below minLog.
	maxLog = Float(0x42B17218) // 88.7228394
	minLog = Float(0xC2CE8ED0) // -103.278931

	sqrtHalf = Float(0x3F3504F3)
)

var expCoeffs = [...]Float{
	0x39506967, // 1.9875691500e-4
	0x3AB743CE, // 1.3981999507e-3
	0x3C088908, // 8.3334519073e-3
	0x3D2AA9C1, // 4.1665795894e-2
	0x3E2AAAAA, // 1.6666665459e-1
	0x3F000000, // 5.0000001201e-1
}

var logCoeffs = [...]Float{
	0x3D9021BB, // 7.0376836292e-2
	0xBDEBD1B8, // -1.1514610310e-1
	0x3DEF251A, // 1.1676998740e-1
	0xBDFE5D4F, // -1.2420140846e-1
	0x3E11E9BF, // 1.4249322787e-1
	0xBE2AAE50, // -1.6668057665e-1
	0x3E4CCEAC, // 2.0000714765e-1
	0xBE7FFFFC, // -2.4999993993e-1
	0x3EAAAAAA, // 3.3333331174e-1
}

// Exp returns e^f.
// The result is within 2 ULP of the exact value.
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//
// Very large values overflow to +Inf, very small ones underflow to +0.
func (f Float) Exp() Float {
	switch {
	case f.IsNaN():
		return quiet(f)
	case f.Gt(maxLog):
		return Inf
	case f.Lt(minLog):
		return Zero
	}
	// f = k*ln(2) + r, |r| <= ln(2)/2.
	k := log2e.Mul(f).RoundToEven()
	r := f.Sub(k.Mul(ln2Hi))
	r = r.Sub(k.Mul(ln2Lo))
	z := r.Mul(r)
	p := expCoeffs[0]
	for _, c := range expCoeffs[1:] {
		p = p.Mul(r).Add(c)
	}
	y := p.Mul(z).Add(r).Add(One)
	return y.Ldexp(int(k.ToInt32()))
}

// Log returns the natural logarithm of f.
// The result is within 2 ULP of the exact value.
//
//	Log(+Inf) = +Inf
//	Log(±0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func (f Float) Log() Float {
	switch {
	case f.IsNaN():
		return quiet(f)
	case f.IsZero():
		return NegInf
	case isNeg(f):
		return NaN
	case f == Inf:
		return f
	}
	// f = x * 2^e, sqrt(1/2) <= x < sqrt(2), and the polynomial works with x - 1.
	x, e := f.Frexp()
	if x.Lt(sqrtHalf) {
		e--
		x = x.Add(x).Sub(One)
	} else {
		x = x.Sub(One)
	}
	z := x.Mul(x)
	y := logCoeffs[0]
	for _, c := range logCoeffs[1:] {
		y = y.Mul(x).Add(c)
	}
	y = y.Mul(x).Mul(z)
	fe := FromInt32(int32(e))
	y = y.Add(ln2Lo.Mul(fe))
	y = y.Sub(Half.Mul(z))
	res := x.Add(y)
	return res.Add(ln2Hi.Mul(fe))
}
