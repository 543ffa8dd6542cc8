package recipe

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports a recipe that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 recipe")
	// ErrBinaryInput reports a recipe that appears to be binary.
	ErrBinaryInput = errors.New("binary recipe detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// Validate returns an error if src is not valid UTF-8 or appears binary.
// A NUL byte is always binary; otherwise a sample of at least 64 bytes with
// 2% or more control bytes is treated as binary.
func Validate(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	control := 0
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	switch {
	case b < 0x09:
		return true
	case b > 0x0D && b < 0x20:
		return true
	case b == 0x7F:
		return true
	}
	return false
}
