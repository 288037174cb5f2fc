package analysis

import (
	"fmt"

	"trithemius-backend/crypto"
)

const (
	DefaultSymbol    = "А"
	DefaultText      = "ПРИВЕТ_МИР"
	DefaultModified  = "ПРИВ,Т_МИР"
	DefaultKey       = "КЛЮЧ"
	DefaultOrderText = "ТЕКСТ"
	DefaultFirstKey  = "ПЕРВЫЙ"
	DefaultSecondKey = "ВТОРОЙ"
	DefaultThreshold = 0.25
)

// Options selects the inputs of the property report. Empty fields take the
// defaults above; an empty Modified is derived from Text.
type Options struct {
	Symbol    string
	Text      string
	Modified  string
	Key       string
	OrderText string
	FirstKey  string
	SecondKey string
	Threshold float64
}

// PositionInfluence is the S-block output for one symbol at one block position.
type PositionInfluence struct {
	Position int    `json:"position" yaml:"position"`
	Input    string `json:"input" yaml:"input"`
	Output   string `json:"output" yaml:"output"`
}

// KeyOrder checks that two keys applied in sequence are undone in reverse order.
type KeyOrder struct {
	Text       string `json:"text" yaml:"text"`
	FirstKey   string `json:"first_key" yaml:"first_key"`
	SecondKey  string `json:"second_key" yaml:"second_key"`
	Ciphertext string `json:"ciphertext" yaml:"ciphertext"`
	Decrypted  string `json:"decrypted" yaml:"decrypted"`
	RoundTrip  bool   `json:"round_trip" yaml:"round_trip"`
}

// Avalanche compares the enhanced ciphertexts of two texts differing in one symbol.
type Avalanche struct {
	Text               string  `json:"text" yaml:"text"`
	Modified           string  `json:"modified" yaml:"modified"`
	Key                string  `json:"key" yaml:"key"`
	Ciphertext         string  `json:"ciphertext" yaml:"ciphertext"`
	ModifiedCiphertext string  `json:"modified_ciphertext" yaml:"modified_ciphertext"`
	Changed            int     `json:"changed" yaml:"changed"`
	Total              int     `json:"total" yaml:"total"`
	Percent            float64 `json:"percent" yaml:"percent"`
	Present            bool    `json:"present" yaml:"present"`
}

// Report is the cryptosystem property report. Distinct is true when every
// block position maps the sample symbol to a different output.
type Report struct {
	Positions []PositionInfluence `json:"positions" yaml:"positions"`
	Distinct  bool                `json:"distinct_by_position" yaml:"distinct_by_position"`
	KeyOrder  KeyOrder            `json:"key_order" yaml:"key_order"`
	Avalanche Avalanche           `json:"avalanche" yaml:"avalanche"`
}

func (o Options) withDefaults(a *crypto.Alphabet) Options {
	if o.Symbol == "" {
		o.Symbol = DefaultSymbol
	}
	if o.Text == "" {
		o.Text = DefaultText
		if o.Modified == "" {
			o.Modified = DefaultModified
		}
	}
	if o.Modified == "" {
		o.Modified = MutateLast(a, o.Text)
	}
	if o.Key == "" {
		o.Key = DefaultKey
	}
	if o.OrderText == "" {
		o.OrderText = DefaultOrderText
	}
	if o.FirstKey == "" {
		o.FirstKey = DefaultFirstKey
	}
	if o.SecondKey == "" {
		o.SecondKey = DefaultSecondKey
	}
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	return o
}

// MutateLast replaces the last ring symbol of text with its successor.
func MutateLast(a *crypto.Alphabet, text string) string {
	symbols := a.Normalize(text)
	for i := len(symbols) - 1; i >= 0; i-- {
		if a.IsValid(symbols[i]) {
			symbols[i] = a.Successor(symbols[i])
			break
		}
	}
	return string(symbols)
}

// Analyze builds the property report of the cryptosystem.
func Analyze(sys *crypto.System, opts Options) (Report, error) {
	opts = opts.withDefaults(sys.Alphabet())

	positions, err := positionInfluence(sys.Alphabet(), opts.Symbol)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Positions: positions,
		Distinct:  distinctOutputs(positions),
		KeyOrder:  keyOrder(sys, opts),
	}

	report.Avalanche, err = avalanche(sys, opts)
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

func positionInfluence(a *crypto.Alphabet, symbol string) ([]PositionInfluence, error) {
	s := []rune(symbol)
	if len(s) != 1 || !a.IsValid(s[0]) {
		return nil, fmt.Errorf("sample symbol %q must be a single alphabet symbol", symbol)
	}
	c := a.Char(a.Value(s[0]))

	block := make([]rune, crypto.BlockSize)
	for i := range block {
		block[i] = c
	}
	out, err := crypto.NewSBlock(a).Apply(block)
	if err != nil {
		return nil, err
	}

	positions := make([]PositionInfluence, crypto.BlockSize)
	for i := range positions {
		positions[i] = PositionInfluence{
			Position: i,
			Input:    string(c),
			Output:   string(out[i]),
		}
	}
	return positions, nil
}

func distinctOutputs(positions []PositionInfluence) bool {
	seen := make(map[string]bool, len(positions))
	for _, p := range positions {
		if seen[p.Output] {
			return false
		}
		seen[p.Output] = true
	}
	return true
}

func keyOrder(sys *crypto.System, opts Options) KeyOrder {
	shift := sys.Shift()
	enc := sys.EncryptPolyalphabetic(opts.OrderText, opts.FirstKey, shift)
	enc = sys.EncryptPolyalphabetic(enc, opts.SecondKey, shift)

	dec := sys.DecryptPolyalphabetic(enc, opts.SecondKey, shift)
	dec = sys.DecryptPolyalphabetic(dec, opts.FirstKey, shift)

	return KeyOrder{
		Text:       opts.OrderText,
		FirstKey:   opts.FirstKey,
		SecondKey:  opts.SecondKey,
		Ciphertext: enc,
		Decrypted:  dec,
		RoundTrip:  dec == string(sys.Alphabet().Normalize(opts.OrderText)),
	}
}

func avalanche(sys *crypto.System, opts Options) (Avalanche, error) {
	c1, err := sys.EncryptEnhancedSBlocks(opts.Text, opts.Key)
	if err != nil {
		return Avalanche{}, fmt.Errorf("encrypt text: %w", err)
	}
	c2, err := sys.EncryptEnhancedSBlocks(opts.Modified, opts.Key)
	if err != nil {
		return Avalanche{}, fmt.Errorf("encrypt modified text: %w", err)
	}

	changed := DiffCount(c1, c2)
	ratio := ChangeRatio(c1, c2)

	return Avalanche{
		Text:               opts.Text,
		Modified:           opts.Modified,
		Key:                opts.Key,
		Ciphertext:         c1,
		ModifiedCiphertext: c2,
		Changed:            changed,
		Total:              max(len([]rune(c1)), len([]rune(c2))),
		Percent:            ratio * 100,
		Present:            ValidateAvalanche(changed, ratio, opts.Threshold),
	}, nil
}
