package crypto

import "fmt"

// System is the text-in/text-out surface used by the HTTP API and the CLI.
// It owns the shared alphabet; each call builds its own cipher state.
type System struct {
	alphabet *Alphabet
	shift    int
	padding  Padding
}

type Option func(*System)

// WithShift sets the shift used by the simple and enhanced ciphers.
func WithShift(shift int) Option {
	return func(s *System) {
		s.shift = shift
	}
}

func WithPadding(p Padding) Option {
	return func(s *System) {
		s.padding = p
	}
}

func NewSystem(opts ...Option) *System {
	s := &System{
		alphabet: NewAlphabet(),
		shift:    DefaultShift,
		padding:  PaddingStrip,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *System) Alphabet() *Alphabet {
	return s.alphabet
}

func (s *System) Shift() int {
	return s.shift
}

func (s *System) Padding() Padding {
	return s.padding
}

func (s *System) EncryptSimple(text, key string) string {
	return NewMonoCipher(s.alphabet, key, s.shift).Encrypt(text)
}

func (s *System) DecryptSimple(text, key string) string {
	return NewMonoCipher(s.alphabet, key, s.shift).Decrypt(text)
}

func (s *System) EncryptPolyalphabetic(text, key string, shift int) string {
	return NewPolyCipher(s.alphabet, key, shift).Encrypt(text)
}

func (s *System) DecryptPolyalphabetic(text, key string, shift int) string {
	return NewPolyCipher(s.alphabet, key, shift).Decrypt(text)
}

// EncryptSBlocks runs the keyed S-block layer alone. The key must have 16
// symbols and the text a multiple of 4.
func (s *System) EncryptSBlocks(text, key string) (string, error) {
	if err := ValidateSBlockKey(key); err != nil {
		return "", err
	}
	out, err := NewKeyedSBlock(s.alphabet, key).Encrypt(text)
	if err != nil {
		return "", fmt.Errorf("encrypt s-blocks: %w", err)
	}
	return out, nil
}

func (s *System) DecryptSBlocks(text, key string) (string, error) {
	if err := ValidateSBlockKey(key); err != nil {
		return "", err
	}
	out, err := NewKeyedSBlock(s.alphabet, key).Decrypt(text)
	if err != nil {
		return "", fmt.Errorf("decrypt s-blocks: %w", err)
	}
	return out, nil
}

func (s *System) EncryptEnhancedSBlocks(text, key string) (string, error) {
	return s.EncryptEnhanced(text, key, s.shift)
}

func (s *System) DecryptEnhancedSBlocks(text, key string) (string, error) {
	return s.DecryptEnhanced(text, key, s.shift)
}

// EncryptEnhanced runs the enhanced pipeline with an explicit poly shift.
func (s *System) EncryptEnhanced(text, key string, shift int) (string, error) {
	return NewEnhancedSystem(s.alphabet, shift, s.padding).Encrypt(text, key)
}

func (s *System) DecryptEnhanced(text, key string, shift int) (string, error) {
	return NewEnhancedSystem(s.alphabet, shift, s.padding).Decrypt(text, key)
}

// CustomAlphabetString renders the keyed alphabet for display.
func (s *System) CustomAlphabetString(key string) string {
	return NewKeyedAlphabet(s.alphabet, key).String()
}
