package crypto

import (
	"fmt"
	"unicode/utf8"
)

const (
	MaxKeyLength  = 256
	SBlockKeySize = 16
	DefaultShift  = 8
)

// ValidateKey validates if the keyword is usable by the keyed ciphers
func ValidateKey(key string) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if n := utf8.RuneCountInString(key); n > MaxKeyLength {
		return fmt.Errorf("%w: %d symbols, limit %d", ErrKeyTooLong, n, MaxKeyLength)
	}
	return nil
}

// ValidateSBlockKey checks the fixed 16-symbol key of the keyed S-block layer.
func ValidateSBlockKey(key string) error {
	if n := utf8.RuneCountInString(key); n != SBlockKeySize {
		return fmt.Errorf("%w: got %d", ErrKeyLength, n)
	}
	return nil
}

func ValidateShift(shift int) error {
	if shift < 1 || shift >= AlphabetSize {
		return fmt.Errorf("%w: got %d", ErrInvalidShift, shift)
	}
	return nil
}
