// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"errors"
	"math/big"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// ErrNotFinite is returned, when an infinity or a NaN can not be represented by the target type.
var ErrNotFinite = errors.New("value is not finite")

// ToDecimal returns the exact decimal value of f.
// Every finite binary32 value is a finite decimal, so no rounding happens.
// For infinities and NaNs ErrNotFinite is returned.
func (f Float) ToDecimal() (decimal.Decimal, error) {
	if !f.IsFinite() {
		return decimal.Decimal{}, ErrNotFinite
	}
	neg, e, m := unpack(f)
	coef := new(big.Int).SetUint64(uint64(m))
	var exp int32
	if e >= 0 {
		coef.Lsh(coef, uint(e))
	} else {
		// m * 2^e == m * 5^-e * 10^e.
		pow5 := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil)
		coef.Mul(coef, pow5)
		exp = e
	}
	if neg {
		coef.Neg(coef)
	}
	return decimal.NewFromBigInt(coef, exp), nil
}

// FromDecimal returns the value nearest to d, ties to even.
// Too large values become infinities. The sign of a zero is not kept, as decimals have no -0.
func FromDecimal(d decimal.Decimal) Float {
	return fromNumberString(d.String())
}

// FromFixed returns the value nearest to a fixed-point number.
// A fixed NaN becomes NaN.
func FromFixed(v fixed.Fixed) Float {
	if v.IsNaN() {
		return NaN
	}
	return fromNumberString(v.String())
}

// fromNumberString parses the string form of a decimal or a fixed-point number.
// The libraries always produce valid numbers, but a parsing error gives NaN instead of a panic.
func fromNumberString(s string) Float {
	f, err := FromString(s)
	if err != nil {
		return NaN
	}
	return f
}
