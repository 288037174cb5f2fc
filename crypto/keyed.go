package crypto

import "unicode"

// KeyedAlphabet is a permutation of the ring seeded by a keyword: the
// keyword's unique members first, then the rest in ring order.
type KeyedAlphabet struct {
	symbols [AlphabetSize]rune
	index   map[rune]int
}

func NewKeyedAlphabet(base *Alphabet, keyword string) *KeyedAlphabet {
	k := &KeyedAlphabet{index: make(map[rune]int, AlphabetSize)}

	n := 0
	place := func(c rune) {
		if _, seen := k.index[c]; seen {
			return
		}
		k.symbols[n] = c
		k.index[c] = n
		n++
	}

	for _, c := range base.Keyword(keyword) {
		place(c)
	}
	for _, c := range base.symbols {
		place(c)
	}

	return k
}

func (k *KeyedAlphabet) Char(i int) rune {
	return k.symbols[ringMod(i)]
}

// Index is case-insensitive, like Alphabet.Index.
func (k *KeyedAlphabet) Index(c rune) (int, bool) {
	i, ok := k.index[unicode.ToUpper(c)]
	return i, ok
}

func (k *KeyedAlphabet) Symbols() []rune {
	out := make([]rune, AlphabetSize)
	copy(out, k.symbols[:])
	return out
}

func (k *KeyedAlphabet) String() string {
	return string(k.symbols[:])
}
