package crypto

import "errors"

var (
	ErrEmptyKey         = errors.New("key cannot be empty")
	ErrKeyTooLong       = errors.New("key is too long")
	ErrKeyLength        = errors.New("s-block key must contain exactly 16 symbols")
	ErrTextLength       = errors.New("text length must be a multiple of 4 symbols")
	ErrBlockLength      = errors.New("block must contain exactly 4 symbols")
	ErrInvalidPadding   = errors.New("invalid block padding")
	ErrInvalidShift     = errors.New("shift must be between 1 and 31")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrNotReversible    = errors.New("operation is not reversible")
)
