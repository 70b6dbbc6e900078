// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ulpDistance returns the number of representable values between got and the
// host result want. Both must not be NaNs.
func ulpDistance(want float32, got Float) int64 {
	d := int64(ordered(FromFloat32(want))) - int64(ordered(got))
	if d < 0 {
		return -d
	}
	return d
}

// assertWithinULP checks, that got is at most ulps away from the host result want.
func assertWithinULP(a *assert.Assertions, want float64, got Float, ulps int64, msgAndArgs ...interface{}) bool {
	w := float32(want)
	if math.IsNaN(want) {
		return a.True(got.IsNaN(), msgAndArgs...)
	}
	if math.IsInf(float64(w), 0) || got.IsNaN() || !got.IsFinite() {
		return a.Equal(FromFloat32(w), got, msgAndArgs...)
	}
	return a.LessOrEqual(ulpDistance(w, got), ulps, msgAndArgs...)
}

// trigArgument returns a value of a moderate magnitude or a large one, up to 2^100.
func trigArgument(rnd *rand.Rand) Float {
	var v float64
	switch rnd.Intn(3) {
	case 0:
		v = rnd.Float64()*20 - 10
	case 1:
		v = rnd.Float64()*2e4 - 1e4
	default:
		v = math.Ldexp(rnd.Float64(), rnd.Intn(131)-30)
		if rnd.Intn(2) == 0 {
			v = -v
		}
	}
	return FromFloat64(v)
}

func TestSinCos(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f, sin, cos Float
	}{
		{Zero, Zero, One},
		{NegZero, NegZero, One},
		{SmallestNonzero, SmallestNonzero, One},
		{Half, FromRaw(0x3EF57744), FromRaw(0x3F60A940)},
		{One, FromRaw(0x3F576AA5), FromRaw(0x3F0A5140)},
		{NegOne, FromRaw(0xBF576AA5), FromRaw(0x3F0A5140)},
		{Two, FromRaw(0x3F68C7B7), FromRaw(0xBED51132)},
		{HalfPi, One, FromRaw(0xB33BBD2E)},
		{Pi, FromRaw(0xB3BBBD2E), NegOne},
		{Pi.Neg(), FromRaw(0x33BBBD2E), NegOne},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			sin, cos := test.f.SinCos()
			a.Equal(test.sin, sin, "%#v", sin)
			a.Equal(test.cos, cos, "%#v", cos)
			a.Equal(sin, test.f.Sin())
			a.Equal(cos, test.f.Cos())
		})
	}
	for _, f := range []Float{Inf, NegInf, NaN} {
		sin, cos := f.SinCos()
		a.True(sin.IsNaN())
		a.True(cos.IsNaN())
	}
}

func TestSinCosAgainstHost(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 100000; i++ {
		f := trigArgument(rnd)
		v := f.Float64()
		sin, cos := f.SinCos()
		assertWithinULP(a, math.Sin(v), sin, 2, "sin(%v)", f)
		assertWithinULP(a, math.Cos(v), cos, 2, "cos(%v)", f)
	}
}

func TestSinCosSymmetry(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 10000; i++ {
		f := trigArgument(rnd)
		a.Equal(f.Sin().Neg(), f.Neg().Sin())
		a.Equal(f.Cos(), f.Neg().Cos())
		s, c := f.SinCos()
		// s^2 + c^2 stays close to one.
		sum := s.Mul(s).Add(c.Mul(c))
		a.True(sum.Sub(One).Abs().Le(FromRaw(0x35800000)), "%v", f)
	}
}

func TestAcos(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f, res Float
	}{
		{One, Zero},
		{NegOne, FromRaw(0x40490FDB)},
		{Zero, FromRaw(0x3FC90FDB)},
		{NegZero, FromRaw(0x3FC90FDB)},
		{Half, FromRaw(0x3F860A92)},
		{Half.Neg(), FromRaw(0x40060A92)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.f.Acos(), "%#v", test.f.Acos())
		})
	}
	a.True(FromRaw(0x3F800001).Acos().IsNaN())
	a.True(Two.Neg().Acos().IsNaN())
	a.True(Inf.Acos().IsNaN())
	a.True(NaN.Acos().IsNaN())
}

func TestAsin(t *testing.T) {
	a := assert.New(t)
	a.Equal(Zero, Zero.Asin())
	a.Equal(NegZero, NegZero.Asin())
	a.Equal(SmallestNonzero, SmallestNonzero.Asin())
	a.Equal(HalfPi, One.Asin())
	a.Equal(HalfPi.Neg(), NegOne.Asin())
	a.True(FromRaw(0xBF800001).Asin().IsNaN())
	a.True(NegInf.Asin().IsNaN())
	a.True(NaN.Asin().IsNaN())
}

func TestInverseTrigAgainstHost(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	check := func(f Float) {
		v := f.Float64()
		assertWithinULP(a, math.Acos(v), f.Acos(), 2, "acos(%v)", f)
		assertWithinULP(a, math.Asin(v), f.Asin(), 3, "asin(%v)", f)
	}
	for i := 0; i < 100000; i++ {
		check(FromFloat64(rnd.Float64()*2 - 1))
	}
	// the neighbourhood of the boundaries.
	for i := Float(0); i < 1000; i++ {
		check(One - i)
		check(NegOne - i)
		check(Half + i)
		check(Half - i)
		check(Half.Neg() + i)
	}
}

func BenchmarkSinCos(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < b.N; i++ {
		FromFloat64(rnd.Float64() * 100).SinCos()
	}
}

func BenchmarkSinCosLarge(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < b.N; i++ {
		FromFloat64(rnd.Float64() * 1e30).SinCos()
	}
}

func BenchmarkAcos(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < b.N; i++ {
		FromFloat64(rnd.Float64()*2 - 1).Acos()
	}
}
