// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const (
	// JSONModeNumber marshals finite values as json numbers, like `1.5`.
	JSONModeNumber = iota
	// JSONModeString marshals values as strings, like `"1.5"`.
	JSONModeString
	// JSONModeBits marshals values as strings with their raw bit pattern, like `"0x3fc00000"`.
	JSONModeBits
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// Infinities and NaNs are always marshaled as strings, because json has no numbers for them.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeNumber

	// ErrBadLength is returned, if binary data has a wrong length.
	ErrBadLength = errors.New("bad data length")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// FromString parses a string into a value, rounding it to nearest, ties to even.
// Accepted forms are decimal numbers with an optional exponent, like `-1.25e-3`,
// infinities `inf`, `+Inf`, `-infinity`, `nan`, and raw bit patterns `0x3f800000`.
// Surrounding quotes and spaces are ignored.
func FromString(s string) (Float, error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return Zero, fmt.Errorf("empty input")
	}
	f, err := doParse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Zero, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	if neg {
		f = f.Neg()
	}
	return f, nil
}

// MustFromString parses a string into a value. It panics on errors.
func MustFromString(s string) Float {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

func doParse(s string) (Float, error) {
	switch strings.ToLower(s) {
	case "inf", "infinity":
		return Inf, nil
	case "nan":
		return NaN, nil
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		b, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return Zero, newPosError("bad bit pattern", 2)
		}
		return FromRaw(uint32(b)), nil
	}
	if err := checkDecimal(s); err != nil {
		return Zero, err
	}
	// strconv is correctly rounded, and a correctly rounded result is unique,
	// so it does not depend on the host.
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Zero, err
	}
	return FromFloat64(v), nil
}

// checkDecimal validates a number in the form of `123.456e-7`.
func checkDecimal(s string) error {
	digits, delimPos := 0, -1
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digits++
		case r == '.':
			if delimPos != -1 {
				return newPosError("unexpected delimeter", i)
			}
			delimPos = i
		case r == 'e' || r == 'E':
			if digits == 0 {
				return newPosError("no digits before exponent", i)
			}
			exp := s[i+1:]
			if len(exp) > 0 && (exp[0] == '-' || exp[0] == '+') {
				exp = exp[1:]
			}
			if len(exp) == 0 {
				return newPosError("empty exponent", i+1)
			}
			for j, er := range exp {
				if er < '0' || er > '9' {
					return newPosError(fmt.Sprintf("error parsing exponent: unexpected symbol %q", er), len(s)-len(exp)+j)
				}
			}
			return nil
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if digits == 0 {
		return newPosError("no digits", 0)
	}
	return nil
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// String returns the shortest decimal representation, which parses back into the same value.
// Infinities are `+Inf` and `-Inf`, all NaNs are `NaN`.
func (f Float) String() string {
	return f.format('g', -1)
}

// GoString returns a Go expression for the value.
func (f Float) GoString() string {
	return fmt.Sprintf("softfloat.FromRaw(0x%08x)", uint32(f))
}

func (f Float) format(fmtByte byte, prec int) string {
	switch {
	case f.IsNaN():
		return "NaN"
	case f == Inf:
		return "+Inf"
	case f == NegInf:
		return "-Inf"
	}
	// Float64 is exact, and with bitSize 32 the shortest form for binary32 is chosen.
	return strconv.FormatFloat(f.Float64(), fmtByte, prec, 32)
}

// Format implements fmt.Formatter.
// It supports 'v', 's', 'e', 'E', 'f', 'F', 'g', 'G' verbs, and 'x', 'X' for the raw bit pattern.
// '%#v' produces GoString().
func (f Float) Format(s fmt.State, verb rune) {
	prec, ok := s.Precision()
	if !ok {
		prec = -1
	}
	var str string
	switch verb {
	case 'v':
		if s.Flag('#') {
			str = f.GoString()
			break
		}
		str = f.String()
	case 's':
		str = f.String()
	case 'e', 'E', 'f', 'F', 'g', 'G':
		str = f.format(byte(verb), prec)
	case 'x':
		str = fmt.Sprintf("0x%08x", uint32(f))
	case 'X':
		str = fmt.Sprintf("0X%08X", uint32(f))
	default:
		str = fmt.Sprintf("%%!%c(softfloat.Float=%s)", verb, f.String())
	}
	if f.IsFinite() && !isNeg(f) && strings.ContainsRune("eEfFgGsv", verb) {
		if s.Flag('+') {
			str = "+" + str
		} else if s.Flag(' ') {
			str = " " + str
		}
	}
	writePadded(s, str)
}

func writePadded(s fmt.State, str string) {
	width, ok := s.Width()
	if !ok || len(str) >= width {
		io.WriteString(s, str)
		return
	}
	pad := strings.Repeat(" ", width-len(str))
	if s.Flag('-') {
		io.WriteString(s, str+pad)
	} else {
		io.WriteString(s, pad+str)
	}
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (f Float) MarshalJSON() ([]byte, error) {
	return f.toJSON(JSONMode), nil
}

func (f Float) toJSON(mode int) []byte {
	switch {
	case mode == JSONModeBits:
		return []byte(fmt.Sprintf(`"0x%08x"`, uint32(f)))
	case mode == JSONModeString || !f.IsFinite():
		return []byte(`"` + f.String() + `"`)
	default:
		return []byte(f.String())
	}
}

// UnmarshalJSON unmarshals a number, or a string in any form accepted by FromString.
// null is ignored.
func (f *Float) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// MarshalBinary returns the raw bit pattern as 4 big-endian bytes.
func (f Float) MarshalBinary() ([]byte, error) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, uint32(f))
	return data, nil
}

// UnmarshalBinary restores a value from 4 big-endian bytes.
func (f *Float) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return fmt.Errorf("%w: expected 4 bytes, got %d", ErrBadLength, len(data))
	}
	*f = Float(binary.BigEndian.Uint32(data))
	return nil
}
