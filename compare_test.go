// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y Float
		res  int
		ok   bool
	}{
		{Zero, Zero, 0, true},
		{Zero, NegZero, 0, true},
		{NegZero, Zero, 0, true},
		{One, Two, -1, true},
		{Two, One, 1, true},
		{NegOne, One, -1, true},
		{NegOne, FromInt32(-2), 1, true},
		{SmallestNonzero, Zero, 1, true},
		{SmallestNonzero.Neg(), NegZero, -1, true},
		{MaxValue, Inf, -1, true},
		{NegInf, MinValue, -1, true},
		{Inf, Inf, 0, true},
		{NegInf, Inf, -1, true},
		{NaN, NaN, 0, false},
		{NaN, One, 0, false},
		{Inf, NaN.Neg(), 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := test.x.Cmp(test.y)
			a.Equal(test.res, res)
			a.Equal(test.ok, ok)
			a.Equal(test.ok && res == 0, test.x.Eq(test.y))
			a.Equal(!(test.ok && res == 0), test.x.Ne(test.y))
			a.Equal(test.ok && res < 0, test.x.Lt(test.y))
			a.Equal(test.ok && res <= 0, test.x.Le(test.y))
			a.Equal(test.ok && res > 0, test.x.Gt(test.y))
			a.Equal(test.ok && res >= 0, test.x.Ge(test.y))
		})
	}
}

func TestNaNComparisons(t *testing.T) {
	a := assert.New(t)
	nans := []Float{NaN, NaN.Neg(), FromRaw(0x7F800001), FromRaw(0xFFFFFFFF)}
	for _, nan := range nans {
		for _, other := range append(interesting, nans...) {
			a.False(nan.Eq(other))
			a.False(nan.Lt(other))
			a.False(nan.Le(other))
			a.False(nan.Gt(other))
			a.False(nan.Ge(other))
			a.True(nan.Ne(other))
			a.False(other.Eq(nan))
			a.False(other.Lt(nan))
			a.False(other.Le(nan))
			a.False(other.Gt(nan))
			a.False(other.Ge(nan))
			a.True(other.Ne(nan))
		}
	}
	a.False(NaN.Eq(NaN))
	a.True(NaN.Ne(NaN))
	a.True(One.Eq(One))
}

func TestCmpAgainstHost(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 100000; i++ {
		x, y := randomFloat(rnd), randomFloat(rnd)
		hx, hy := x.Float32(), y.Float32()
		a.Equal(hx == hy, x.Eq(y), "%#v %#v", x, y)
		a.Equal(hx != hy, x.Ne(y), "%#v %#v", x, y)
		a.Equal(hx < hy, x.Lt(y), "%#v %#v", x, y)
		a.Equal(hx <= hy, x.Le(y), "%#v %#v", x, y)
		a.Equal(hx > hy, x.Gt(y), "%#v %#v", x, y)
		a.Equal(hx >= hy, x.Ge(y), "%#v %#v", x, y)
	}
}

func TestMinMax(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, min, max Float
	}{
		{One, Two, One, Two},
		{NegOne, One, NegOne, One},
		{Zero, NegZero, NegZero, Zero},
		{NegZero, Zero, NegZero, Zero},
		{NegZero, NegZero, NegZero, NegZero},
		{NegInf, MinValue, NegInf, MinValue},
		{Inf, MaxValue, MaxValue, Inf},
		{NaN, One, One, One},
		{NegOne, NaN, NegOne, NegOne},
		{NaN, NegInf, NegInf, NegInf},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.min, Min(test.x, test.y))
			a.Equal(test.min, test.y.Min(test.x))
			a.Equal(test.max, Max(test.x, test.y))
			a.Equal(test.max, test.y.Max(test.x))
		})
	}
	a.True(Min(NaN, NaN.Neg()).IsNaN())
	a.True(Max(FromRaw(0x7F800001), NaN).IsNaN())
	a.Equal(FromRaw(0x7FC00001), Max(FromRaw(0x7F800001), NaN))
}

func TestClamp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, lo, hi, res Float
	}{
		{Half, Zero, One, Half},
		{Two, Zero, One, One},
		{NegOne, Zero, One, Zero},
		{Inf, Zero, One, One},
		{NegInf, Zero, One, Zero},
		{NaN, Zero, One, Zero},
		{NaN, NegOne, One, NegOne},
		{NegZero, Zero, One, Zero},
		{One, NaN, Two, One},
		{Two, NaN, One, One},
		{One, Two, Zero, Zero},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Clamp(test.x, test.lo, test.hi))
			a.Equal(test.res, test.x.Clamp(test.lo, test.hi))
		})
	}
}

func TestTotalCmp(t *testing.T) {
	a := assert.New(t)
	ordered := []Float{
		FromRaw(0xFFFFFFFF), NaN.Neg(), NegInf, MinValue, NegOne, SmallestNonzero.Neg(), NegZero,
		Zero, SmallestNonzero, MinNormal, One, MaxValue, Inf, NaN, FromRaw(0x7FFFFFFF),
	}
	for i := range ordered {
		for j := range ordered {
			var expected int
			switch {
			case i < j:
				expected = -1
			case i > j:
				expected = 1
			}
			a.Equal(expected, ordered[i].TotalCmp(ordered[j]), "%d %d", i, j)
		}
	}
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	shuffled := append([]Float(nil), ordered...)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	sort.Slice(shuffled, func(i, j int) bool {
		return shuffled[i].TotalCmp(shuffled[j]) < 0
	})
	a.Equal(ordered, shuffled)
}

func BenchmarkCmp(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < b.N; i++ {
		v1 := FromRaw(rnd.Uint32())
		v2 := FromRaw(rnd.Uint32())
		v1.Cmp(v2)
	}
}
