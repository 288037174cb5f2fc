// Package crypto contains the Trithemius family of substitution ciphers
// over the 32-symbol telegraph alphabet.
package crypto

import (
	"strings"
	"unicode"
)

// AlphabetSize is the order of the symbol ring.
const AlphabetSize = 32

// 31 Cyrillic letters (no Ё, Ъ) plus '_' as the word separator.
var telegraphSymbols = [AlphabetSize]rune{
	'А', 'Б', 'В', 'Г', 'Д', 'Е', 'Ж', 'З',
	'И', 'Й', 'К', 'Л', 'М', 'Н', 'О', 'П',
	'Р', 'С', 'Т', 'У', 'Ф', 'Х', 'Ц', 'Ч',
	'Ш', 'Щ', 'Ы', 'Ь', 'Э', 'Ю', 'Я', '_',
}

// Alphabet is the immutable symbol ring shared by every cipher.
type Alphabet struct {
	symbols [AlphabetSize]rune
	values  map[rune]int
}

func NewAlphabet() *Alphabet {
	a := &Alphabet{
		symbols: telegraphSymbols,
		values:  make(map[rune]int, AlphabetSize),
	}
	for i, c := range a.symbols {
		a.values[c] = i
	}
	return a
}

// Char returns the symbol at v mod 32.
func (a *Alphabet) Char(v int) rune {
	return a.symbols[ringMod(v)]
}

// Value returns the index of c, or 0 when c is not a member.
// Callers that must tell 'А' from an unknown symbol use Index or IsValid.
func (a *Alphabet) Value(c rune) int {
	v, _ := a.Index(c)
	return v
}

func (a *Alphabet) Index(c rune) (int, bool) {
	v, ok := a.values[unicode.ToUpper(c)]
	return v, ok
}

func (a *Alphabet) IsValid(c rune) bool {
	_, ok := a.Index(c)
	return ok
}

// Add sums the indices of two symbols mod 32.
func (a *Alphabet) Add(c1, c2 rune) rune {
	return a.Char(a.Value(c1) + a.Value(c2))
}

// Subtract takes the difference of the indices of two symbols mod 32.
func (a *Alphabet) Subtract(c1, c2 rune) rune {
	return a.Char(a.Value(c1) - a.Value(c2))
}

// Successor is the next symbol around the ring.
func (a *Alphabet) Successor(c rune) rune {
	return a.Char(a.Value(c) + 1)
}

func (a *Alphabet) Symbols() []rune {
	out := make([]rune, AlphabetSize)
	copy(out, a.symbols[:])
	return out
}

func (a *Alphabet) String() string {
	return string(a.symbols[:])
}

// Normalize upper-cases text and splits it into symbols.
func (a *Alphabet) Normalize(text string) []rune {
	return []rune(strings.ToUpper(text))
}

// Keyword upper-cases key and drops every symbol outside the ring.
// Repeats are kept.
func (a *Alphabet) Keyword(key string) []rune {
	out := make([]rune, 0, len(key))
	for _, c := range a.Normalize(key) {
		if a.IsValid(c) {
			out = append(out, c)
		}
	}
	return out
}

func ringMod(v int) int {
	v %= AlphabetSize
	if v < 0 {
		v += AlphabetSize
	}
	return v
}
