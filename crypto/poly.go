package crypto

// PolyCipher substitutes each symbol through a Trithemius table that is
// shifted after every substituted symbol. Decryption rebuilds the same
// table sequence, so both directions stay in lock-step by position.
type PolyCipher struct {
	alphabet *Alphabet
	keyword  []rune
	shift    int
}

func NewPolyCipher(alphabet *Alphabet, keyword string, shift int) *PolyCipher {
	return &PolyCipher{
		alphabet: alphabet,
		keyword:  alphabet.Keyword(keyword),
		shift:    shift,
	}
}

func (p *PolyCipher) Encrypt(text string) string {
	return p.transform(text, p.shift, nil)
}

func (p *PolyCipher) Decrypt(text string) string {
	return p.transform(text, -p.shift, nil)
}

// Trace encrypts text and returns the table in force before each
// substituted symbol, in order.
func (p *PolyCipher) Trace(text string) (string, []Table) {
	var tables []Table
	out := p.transform(text, p.shift, func(t Table) {
		tables = append(tables, t)
	})
	return out, tables
}

// InitialTable is the table before the first symbol.
func (p *PolyCipher) InitialTable() Table {
	return BuildTable(p.alphabet, p.keyword)
}

func (p *PolyCipher) transform(text string, delta int, observe func(Table)) string {
	if len(p.keyword) == 0 {
		return text
	}

	keyLen := len(p.keyword)
	table := p.InitialTable()
	symbols := p.alphabet.Normalize(text)

	for i, c := range symbols {
		// Position advances for every symbol, the table only for ring members.
		if !p.alphabet.IsValid(c) {
			continue
		}
		if observe != nil {
			observe(table)
		}
		symbols[i] = table[ringMod(table.IndexOf(c)+delta)]
		table = table.Shift(p.alphabet, p.keyword[i%keyLen], keyLen+i)
	}

	return string(symbols)
}
