// Package biguint implements fixed-width unsigned big-integer arithmetic.
//
// A Uint carries its byte width as part of the value, giving byte-length
// type safety to cryptographic-style quantities (hashes, keys): a function
// returning a 32-byte digest can return a 32-byte Uint and the consumer
// knows the size without checking. Full arithmetic (add, subtract,
// multiply, divide, modulo), total ordering and hex/byte conversions are
// provided over a single big-endian byte representation.
//
// Add, Sub and Mul wrap silently modulo 256^width; this is a documented
// contract, not an accident. Callers that need strict detection should use
// the checked variants (AddChecked, SubChecked, MulChecked).
package biguint

import (
	"encoding/hex"
	"fmt"
)

// Uint is an immutable unsigned integer with a fixed byte width,
// representing a value in [0, 256^width - 1].
//
// The magnitude is stored big-endian: byte 0 is the most significant.
// Every operation returns a new value, so a Uint may be shared freely
// across goroutines once constructed.
//
// Operations never mix widths: combining a Uint with one of a different
// width panics. Width mismatches are programming errors, not input
// errors.
type Uint struct {
	bz []byte
}

// FromBytes returns a Uint holding a copy of bz interpreted as a
// big-endian magnitude. The width of the result is len(bz).
// It panics if bz is empty.
func FromBytes(bz []byte) Uint {
	if len(bz) == 0 {
		panic("biguint: zero-width value")
	}
	cp := make([]byte, len(bz))
	copy(cp, bz)
	return Uint{bz: cp}
}

// Zero returns the zero value of the given byte width.
func Zero(width int) Uint {
	mustValidWidth(width)
	return Uint{bz: make([]byte, width)}
}

// One returns the value 1 of the given byte width.
func One(width int) Uint {
	return FromUint64(width, 1)
}

// Max returns the largest representable value of the given byte width,
// 256^width - 1 (every byte 0xFF).
func Max(width int) Uint {
	mustValidWidth(width)
	bz := make([]byte, width)
	for i := range bz {
		bz[i] = 0xFF
	}
	return Uint{bz: bz}
}

// FromUint64 converts v to a Uint of the given byte width. The low
// min(width, 8) bytes of v are placed at the least-significant end of the
// result; higher-order result bytes are zero, and bits of v beyond
// width*8 are discarded.
func FromUint64(width int, v uint64) Uint {
	mustValidWidth(width)
	bz := make([]byte, width)
	for i := width - 1; i >= 0 && v > 0; i-- {
		bz[i] = byte(v)
		v >>= 8
	}
	return Uint{bz: bz}
}

// FromHex decodes a hexadecimal string into a Uint of the given byte
// width. An optional "0x" or "0X" prefix and ASCII spaces are ignored;
// what remains must be exactly 2*width case-insensitive hex digits.
// Inputs of the wrong length yield ErrInvalidHexLength, inputs with a
// character outside 0-9a-fA-F yield ErrInvalidHexDigit.
func FromHex(width int, s string) (Uint, error) {
	mustValidWidth(width)
	digits := cleanHex(s)
	if len(digits) != 2*width {
		return Uint{}, ErrInvalidHexLength{Want: 2 * width, Got: len(digits)}
	}
	bz := make([]byte, width)
	for i := 0; i < len(digits); i += 2 {
		hi, ok := fromHexDigit(digits[i])
		if !ok {
			return Uint{}, ErrInvalidHexDigit{Digit: digits[i], Pos: i}
		}
		lo, ok := fromHexDigit(digits[i+1])
		if !ok {
			return Uint{}, ErrInvalidHexDigit{Digit: digits[i+1], Pos: i + 1}
		}
		bz[i/2] = hi<<4 | lo
	}
	return Uint{bz: bz}, nil
}

// cleanHex strips ASCII spaces and a leading 0x/0X prefix, returning the
// remaining characters.
func cleanHex(s string) []byte {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	return digits
}

func fromHexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Width returns the byte width of u. The zero Uint has width 0 and is
// not usable as an operand.
func (u Uint) Width() int { return len(u.bz) }

// Bytes returns a big-endian copy of u's bytes.
func (u Uint) Bytes() []byte {
	cp := make([]byte, len(u.bz))
	copy(cp, u.bz)
	return cp
}

// LittleEndianBytes returns a byte-reversed copy of u, least significant
// byte first, for wire formats that are little-endian.
func (u Uint) LittleEndianBytes() []byte {
	cp := make([]byte, len(u.bz))
	for i, b := range u.bz {
		cp[len(u.bz)-1-i] = b
	}
	return cp
}

// Hex returns the lowercase hex encoding of u: two digits per byte, most
// significant byte first, no prefix.
func (u Uint) Hex() string { return hex.EncodeToString(u.bz) }

func (u Uint) String() string { return u.Hex() }

// IsZero reports whether every byte of u is zero.
func (u Uint) IsZero() bool {
	for _, b := range u.bz {
		if b != 0 {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler, emitting lowercase hex.
// Together with UnmarshalText this makes Uint round-trip through
// encoding/json as a quoted hex string.
func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. When u already has a
// width the input must encode exactly that many bytes; otherwise the
// width is inferred from the digit count.
func (u *Uint) UnmarshalText(text []byte) error {
	width := len(u.bz)
	if width == 0 {
		n := len(cleanHex(string(text)))
		if n == 0 {
			return ErrInvalidHexLength{Want: 2, Got: 0}
		}
		width = (n + 1) / 2
	}
	v, err := FromHex(width, string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func mustValidWidth(width int) {
	if width <= 0 {
		panic(fmt.Sprintf("biguint: invalid width %d", width))
	}
}

func (u Uint) mustSameWidth(v Uint) {
	if len(u.bz) != len(v.bz) {
		panic(fmt.Sprintf("biguint: width mismatch: %d vs %d", len(u.bz), len(v.bz)))
	}
}
