package crypto

import (
	"fmt"
	"strings"
)

// Filler pads the last block in PaddingStrip mode.
const Filler = 'А'

// Padding selects how the enhanced pipeline fills the last block.
type Padding int

const (
	// PaddingStrip appends Filler and strips every trailing Filler on
	// decryption. Lossy when the polyalphabetic output itself ends in Filler.
	PaddingStrip Padding = iota
	// PaddingCounted always appends 1..4 symbols, each the ring symbol whose
	// index is the pad count, and removes exactly that many.
	PaddingCounted
)

func (p Padding) String() string {
	switch p {
	case PaddingStrip:
		return "strip"
	case PaddingCounted:
		return "counted"
	default:
		return fmt.Sprintf("padding(%d)", int(p))
	}
}

func ParsePadding(s string) (Padding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strip":
		return PaddingStrip, nil
	case "counted":
		return PaddingCounted, nil
	default:
		return 0, fmt.Errorf("unknown padding mode %q", s)
	}
}

// EnhancedSystem chains the polyalphabetic cipher with the unkeyed S-block
// layer: poly -> pad to 4 -> S-block per block.
type EnhancedSystem struct {
	alphabet *Alphabet
	sblock   *SBlock
	shift    int
	padding  Padding
}

func NewEnhancedSystem(alphabet *Alphabet, shift int, padding Padding) *EnhancedSystem {
	return &EnhancedSystem{
		alphabet: alphabet,
		sblock:   NewSBlock(alphabet),
		shift:    shift,
		padding:  padding,
	}
}

func (e *EnhancedSystem) Encrypt(text, key string) (string, error) {
	poly := NewPolyCipher(e.alphabet, key, e.shift).Encrypt(text)
	padded := e.pad(e.alphabet.Normalize(poly))

	out, err := e.sblock.Encrypt(string(padded))
	if err != nil {
		return "", fmt.Errorf("s-block layer: %w", err)
	}
	return out, nil
}

func (e *EnhancedSystem) Decrypt(text, key string) (string, error) {
	plain, err := e.sblock.Decrypt(text)
	if err != nil {
		return "", fmt.Errorf("s-block layer: %w", err)
	}

	unpadded, err := e.unpad([]rune(plain))
	if err != nil {
		return "", err
	}

	return NewPolyCipher(e.alphabet, key, e.shift).Decrypt(string(unpadded)), nil
}

func (e *EnhancedSystem) pad(symbols []rune) []rune {
	switch e.padding {
	case PaddingCounted:
		n := BlockSize - len(symbols)%BlockSize
		pad := e.alphabet.Char(n)
		for i := 0; i < n; i++ {
			symbols = append(symbols, pad)
		}
	default:
		for len(symbols)%BlockSize != 0 {
			symbols = append(symbols, Filler)
		}
	}
	return symbols
}

func (e *EnhancedSystem) unpad(symbols []rune) ([]rune, error) {
	switch e.padding {
	case PaddingCounted:
		if len(symbols) == 0 {
			return nil, fmt.Errorf("%w: empty text", ErrInvalidPadding)
		}
		last := symbols[len(symbols)-1]
		n, ok := e.alphabet.Index(last)
		if !ok || n < 1 || n > BlockSize || n > len(symbols) {
			return nil, fmt.Errorf("%w: bad pad symbol %q", ErrInvalidPadding, last)
		}
		for _, c := range symbols[len(symbols)-n:] {
			if c != last {
				return nil, fmt.Errorf("%w: inconsistent pad symbols", ErrInvalidPadding)
			}
		}
		return symbols[:len(symbols)-n], nil
	default:
		end := len(symbols)
		for end > 0 && symbols[end-1] == Filler {
			end--
		}
		return symbols[:end], nil
	}
}
