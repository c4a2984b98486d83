package biguint

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Div, Mod and their uint64 variants
// when the divisor is the zero value.
var ErrDivisionByZero = errors.New("division by zero")

type (
	// ErrInvalidHexLength is returned when a hex string does not encode
	// exactly the expected number of bytes once the 0x prefix and any
	// spaces are stripped.
	ErrInvalidHexLength struct {
		Want int // expected hex digit count
		Got  int
	}

	// ErrInvalidHexDigit is returned when a hex string contains a
	// character outside 0-9a-fA-F. Pos indexes the cleaned digit string,
	// after prefix and space stripping.
	ErrInvalidHexDigit struct {
		Digit byte
		Pos   int
	}

	// ErrOverflow is returned by the checked operations when a result
	// exceeds 256^width - 1.
	ErrOverflow struct {
		Op    string
		Width int
	}

	// ErrUnderflow is returned by SubChecked when the subtrahend is
	// larger than the minuend.
	ErrUnderflow struct {
		Op    string
		Width int
	}
)

func (e ErrInvalidHexLength) Error() string {
	return fmt.Sprintf("invalid hex input: expected %d digits, got %d", e.Want, e.Got)
}

func (e ErrInvalidHexDigit) Error() string {
	return fmt.Sprintf("invalid hex digit %q at position %d", e.Digit, e.Pos)
}

func (e ErrOverflow) Error() string {
	return fmt.Sprintf("%s overflows %d-byte width", e.Op, e.Width)
}

func (e ErrUnderflow) Error() string {
	return fmt.Sprintf("%s underflows %d-byte width", e.Op, e.Width)
}
