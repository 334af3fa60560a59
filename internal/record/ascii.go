package record

import (
	"fmt"
	"unicode/utf8"
)

// DecodeError reports a payload byte outside the ASCII range.
type DecodeError struct {
	Byte byte
	Pos  int
}

// Error implements the error interface for DecodeError.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("ascii: can't decode byte 0x%02x in position %d: ordinal not in range(128)", e.Byte, e.Pos)
}

// DecodeASCII returns b as text. It fails on the first byte above 127.
func DecodeASCII(b []byte) (string, error) {
	for i, c := range b {
		if c >= utf8.RuneSelf {
			return "", &DecodeError{Byte: c, Pos: i}
		}
	}
	return string(b), nil
}
