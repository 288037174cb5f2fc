package crypto

// MonoCipher is the fixed-shift substitution over a keyed alphabet.
type MonoCipher struct {
	alphabet *Alphabet
	keyed    *KeyedAlphabet
	keyword  string
	shift    int
}

func NewMonoCipher(alphabet *Alphabet, keyword string, shift int) *MonoCipher {
	return &MonoCipher{
		alphabet: alphabet,
		keyed:    NewKeyedAlphabet(alphabet, keyword),
		keyword:  keyword,
		shift:    shift,
	}
}

// EncryptChar shifts c forward inside the keyed alphabet. Symbols outside
// the ring pass through.
func (m *MonoCipher) EncryptChar(c rune) rune {
	return m.substitute(c, m.shift)
}

func (m *MonoCipher) DecryptChar(c rune) rune {
	return m.substitute(c, -m.shift)
}

func (m *MonoCipher) substitute(c rune, delta int) rune {
	if !m.alphabet.IsValid(c) {
		return c
	}
	i, _ := m.keyed.Index(m.alphabet.Char(m.alphabet.Value(c)))
	return m.keyed.Char(i + delta)
}

func (m *MonoCipher) Encrypt(text string) string {
	return m.mapText(text, m.EncryptChar)
}

func (m *MonoCipher) Decrypt(text string) string {
	return m.mapText(text, m.DecryptChar)
}

func (m *MonoCipher) mapText(text string, fn func(rune) rune) string {
	if m.keyword == "" {
		return text
	}
	symbols := m.alphabet.Normalize(text)
	for i, c := range symbols {
		symbols[i] = fn(c)
	}
	return string(symbols)
}
