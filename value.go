// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softfloat implements a software IEEE-754 binary32 number.
// All the operations are performed with integer arithmetic only, so that
// the results are bit-for-bit identical on every architecture, compiler and
// optimization level. This makes Float suitable for lockstep simulations
// and deterministic replays, where hardware floats could diverge because of
// extended precision, fused multiply-add contraction or flush-to-zero modes.
package softfloat

import (
	"math/bits"
	"strconv"
)

type number = uint32

// Float is a binary32 floating-point number.
// The value is stored as its raw IEEE-754 bit pattern:
//
//	31 30      23                      0
//	 _|________|_______________________
//	 seeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmm
//
// where s is the sign bit, e is the exponent biased by 127,
// and m is the mantissa without its implicit leading bit.
//
// Float values are immutable and can be copied freely.
// Notice that the == operator compares bit patterns: +0 != -0, and a NaN
// can be equal to itself. Use Eq for IEEE equality.
type Float number

const (
	bitsInNumber = 32
	mantBits     = 23
	expBits      = bitsInNumber - mantBits - 1
	bias         = 1<<(expBits-1) - 1

	signMask    = 1 << (bitsInNumber - 1)
	expMask     = 1<<expBits - 1
	mantMask    = 1<<mantBits - 1
	implicitBit = 1 << mantBits
	quietBit    = 1 << (mantBits - 1)

	minNormalExp = 1 - bias
	maxExp       = expMask
)

const (
	// Zero is the positive zero.
	Zero = Float(0)
	// NegZero is the negative zero.
	NegZero = Float(signMask)
	// One is 1.0.
	One = Float(bias << mantBits)
	// NegOne is -1.0.
	NegOne = Float(signMask | bias<<mantBits)
	// Two is 2.0.
	Two = Float((bias + 1) << mantBits)
	// Half is 0.5.
	Half = Float((bias - 1) << mantBits)
	// Inf is the positive infinity.
	Inf = Float(expMask << mantBits)
	// NegInf is the negative infinity.
	NegInf = Float(signMask | expMask<<mantBits)
	// NaN is the canonical quiet not-a-number.
	NaN = Float(expMask<<mantBits | quietBit)
	// MaxValue is the largest finite value, (2 - 2^-23) * 2^127.
	MaxValue = Float(0x7F7FFFFF)
	// MinValue is the most negative finite value, -MaxValue.
	MinValue = Float(signMask | 0x7F7FFFFF)
	// SmallestNonzero is the smallest positive subnormal value, 2^-149.
	SmallestNonzero = Float(1)
	// MinNormal is the smallest positive normal value, 2^-126.
	MinNormal = Float(implicitBit)
	// Epsilon is the difference between 1 and the next representable value, 2^-23.
	Epsilon = Float((bias - mantBits) << mantBits)
	// Pi is π rounded to the nearest binary32 value.
	Pi = Float(0x40490FDB)
	// HalfPi is π/2 rounded to the nearest binary32 value.
	HalfPi = Float(0x3FC90FDB)
	// TwoPi is 2π rounded to the nearest binary32 value.
	TwoPi = Float(0x40C90FDB)
)

// Class is the IEEE-754 category of a value.
type Class int

const (
	// ClassPositiveZero is +0.
	ClassPositiveZero Class = iota
	// ClassNegativeZero is -0.
	ClassNegativeZero
	// ClassSubnormal is a non-zero value with a zero exponent field.
	ClassSubnormal
	// ClassNormal is a finite value with an implicit leading one.
	ClassNormal
	// ClassInfinity is a positive or negative infinity.
	ClassInfinity
	// ClassNaN is a not-a-number.
	ClassNaN
)

var classNames = [...]string{
	ClassPositiveZero: "PositiveZero",
	ClassNegativeZero: "NegativeZero",
	ClassSubnormal:    "Subnormal",
	ClassNormal:       "Normal",
	ClassInfinity:     "Infinity",
	ClassNaN:          "NaN",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Class(" + strconv.Itoa(int(c)) + ")"
	}
	return classNames[c]
}

func isNeg(f Float) bool {
	return f&signMask != 0
}

func exp(f Float) int32 {
	return int32(f >> mantBits & expMask)
}

func mant(f Float) number {
	return number(f & mantMask)
}

func split(f Float) (neg bool, exponent int32, mantissa number) {
	return isNeg(f), exp(f), mant(f)
}

func combine(neg bool, exponent int32, mantissa number) Float {
	f := Float(number(exponent)<<mantBits | mantissa&mantMask)
	if neg {
		f |= signMask
	}
	return f
}

// unpack returns the finite value f as (-1)^neg * m * 2^e, where m has its
// highest bit at position 23. Subnormal values are normalized.
// For zeros m is 0. f must not be an infinity or a NaN.
func unpack(f Float) (neg bool, e int32, m number) {
	neg, be, m := split(f)
	if be == 0 {
		if m == 0 {
			return neg, 0, 0
		}
		shift := int32(bits.LeadingZeros32(m)) - (bitsInNumber - 1 - mantBits)
		return neg, minNormalExp - mantBits - shift, m << uint(shift)
	}
	return neg, be - bias - mantBits, m | implicitBit
}

// FromRaw returns a value for the given IEEE-754 bit pattern.
func FromRaw(b uint32) Float {
	return Float(b)
}

// Raw returns the IEEE-754 bit pattern of f.
func (f Float) Raw() uint32 {
	return uint32(f)
}

// FromRawInt32 returns a value for the given bit pattern stored in a signed integer.
func FromRawInt32(b int32) Float {
	return Float(uint32(b))
}

// RawInt32 returns the bit pattern of f reinterpreted as a signed integer.
func (f Float) RawInt32() int32 {
	return int32(f)
}

// Decode splits f into its sign, biased exponent, and mantissa fields,
// and returns its class.
func (f Float) Decode() (neg bool, exponent uint8, mantissa uint32, class Class) {
	neg, e, m := split(f)
	return neg, uint8(e), m, f.Class()
}

// Class returns the IEEE-754 category of f.
func (f Float) Class() Class {
	neg, e, m := split(f)
	switch {
	case e == 0 && m == 0:
		if neg {
			return ClassNegativeZero
		}
		return ClassPositiveZero
	case e == 0:
		return ClassSubnormal
	case e == maxExp && m == 0:
		return ClassInfinity
	case e == maxExp:
		return ClassNaN
	default:
		return ClassNormal
	}
}

// IsNaN returns true if f is a not-a-number.
func (f Float) IsNaN() bool {
	return f&^signMask > Inf
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Float) IsInf(sign int) bool {
	return sign >= 0 && f == Inf || sign <= 0 && f == NegInf
}

// IsFinite returns true if f is neither an infinity nor a NaN.
func (f Float) IsFinite() bool {
	return exp(f) != maxExp
}

// IsZero returns true for both +0 and -0.
func (f Float) IsZero() bool {
	return f&^signMask == 0
}

// IsSubnormal returns true if f is a non-zero value without an implicit leading bit.
func (f Float) IsSubnormal() bool {
	return exp(f) == 0 && mant(f) != 0
}

// Signbit returns true if the sign bit of f is set.
// This is also true for -0 and negative NaNs.
func (f Float) Signbit() bool {
	return isNeg(f)
}

// quiet returns f with the quiet bit set. f must be a NaN.
func quiet(f Float) Float {
	return f | quietBit
}

// propagateNaN returns a quiet version of the first NaN argument.
// At least one of the arguments must be a NaN.
func propagateNaN(a, b Float) Float {
	if a.IsNaN() {
		return quiet(a)
	}
	return quiet(b)
}
