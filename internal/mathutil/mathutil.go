// Package mathutil holds the integer helpers the software float is built on.
// Every function here is pure integer arithmetic, so its results do not
// depend on the host FPU.
package mathutil

import (
	"math/bits"
	"unsafe"
)

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// ShiftRightSticky returns v >> n, where the lowest bit of the result is set
// if any of the shifted out bits was non-zero.
// For n >= 64 the result is 1 if v != 0, and 0 otherwise.
func ShiftRightSticky(v uint64, n uint) uint64 {
	if n == 0 {
		return v
	}
	if n >= 64 {
		return Sticky(v)
	}
	return v>>n | Sticky(v&(1<<n-1))
}

// Sticky returns 1 if v is non-zero, 0 otherwise.
func Sticky(v uint64) uint64 {
	return (v | -v) >> 63
}

// Normalize64 shifts m left until its highest bit is set.
// Returns the shifted value and the shift. For m == 0 it returns (0, 0).
func Normalize64(m uint64) (uint64, int) {
	if m == 0 {
		return 0, 0
	}
	lz := bits.LeadingZeros64(m)
	return m << uint(lz), lz
}

// Isqrt64 returns floor(sqrt(n)) and reports whether n is a perfect square.
// The initial estimate is a power of two taken from the bit length of n,
// which is never below the root, so that the Newton-Raphson
// iterations decrease monotonically down to the floor of the root.
func Isqrt64(n uint64) (root uint64, exact bool) {
	if n < 2 {
		return n, true
	}
	r := uint64(1) << uint((BinaryDigits(n)+1)/2)
	for {
		next := (r + n/r) >> 1
		if next >= r {
			break
		}
		r = next
	}
	return r, r*r == n
}

// Uint192 is an unsigned 192-bit integer, most significant word first.
type Uint192 [3]uint64

// IsZero returns true if all words are zero.
func (u Uint192) IsZero() bool {
	return u[0]|u[1]|u[2] == 0
}

// Neg returns 2^192 - u.
func (u Uint192) Neg() Uint192 {
	var r Uint192
	var b uint64
	r[2], b = bits.Sub64(0, u[2], 0)
	r[1], b = bits.Sub64(0, u[1], b)
	r[0], _ = bits.Sub64(0, u[0], b)
	return r
}

// Lsh returns u << n for n < 64.
func (u Uint192) Lsh(n uint) Uint192 {
	if n == 0 {
		return u
	}
	return Uint192{
		u[0]<<n | u[1]>>(64-n),
		u[1]<<n | u[2]>>(64-n),
		u[2] << n,
	}
}

// LeadingZeros returns the number of leading zero bits in u.
func (u Uint192) LeadingZeros() int {
	switch {
	case u[0] != 0:
		return bits.LeadingZeros64(u[0])
	case u[1] != 0:
		return 64 + bits.LeadingZeros64(u[1])
	default:
		return 128 + bits.LeadingZeros64(u[2])
	}
}

// Normalize shifts u left until its highest bit is set, and returns
// the top 64 bits of the result, the shift, and whether any of the lower
// 128 bits is non-zero. u must be non-zero.
func (u Uint192) Normalize() (top uint64, shift int, sticky bool) {
	shift = u.LeadingZeros()
	for s := shift; s > 0; {
		step := s
		if step > 63 {
			step = 63
		}
		u = u.Lsh(uint(step))
		s -= step
	}
	return u[0], shift, u[1]|u[2] != 0
}

// MulLow192 returns the low 192 bits of u * m.
func MulLow192(u Uint192, m uint64) Uint192 {
	h2, l2 := bits.Mul64(u[2], m)
	h1, l1 := bits.Mul64(u[1], m)
	l0 := u[0] * m
	r1, c := bits.Add64(l1, h2, 0)
	r0, _ := bits.Add64(l0, h1, c)
	return Uint192{r0, r1, l2}
}

// Mul64Norm multiplies a and b and returns the product normalized so that
// the highest bit of hi is set, the applied left shift, and whether
// any of the bits below hi is non-zero.
// The product must be at least 2^64.
func Mul64Norm(a, b uint64) (hi uint64, shift int, sticky bool) {
	hi, lo := bits.Mul64(a, b)
	shift = bits.LeadingZeros64(hi)
	if shift > 0 {
		hi = hi<<uint(shift) | lo>>uint(64-shift)
		lo <<= uint(shift)
	}
	return hi, shift, lo != 0
}

// AbsInt64 returns the absolute value of val as an unsigned number,
// so that math.MinInt64 is handled without overflow.
func AbsInt64(val int64) uint64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return uint64((val + mask) ^ mask)
}
