package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestSBlockBoxIsInvertible(t *testing.T) {
	s := NewSBlock(NewAlphabet())
	seen := make(map[int]bool)
	for v := 0; v < AlphabetSize; v++ {
		out := s.Box(v)
		if seen[out] {
			t.Fatalf("box value %d produced twice", out)
		}
		seen[out] = true
		if back := s.InverseBox(out); back != v {
			t.Fatalf("InverseBox(Box(%d)) = %d", v, back)
		}
	}
}

func TestSBlockApply(t *testing.T) {
	a := NewAlphabet()
	s := NewSBlock(a)

	tests := []struct {
		name  string
		block string
		want  string
	}{
		// same symbol, different positions
		{"position diffusion", "АААА", "ГИНТ"},
		{"pass-through", "А-А ", "Г-Н "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Apply([]rune(tt.block))
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.block, string(got), tt.want)
			}
		})
	}
}

func TestSBlockRoundTripAllBlocks(t *testing.T) {
	a := NewAlphabet()
	layers := map[string]*SBlock{
		"plain": NewSBlock(a),
		"keyed": NewKeyedSBlock(a, "ШИФРОВАНИЕ_КЛЮЧА"),
	}
	symbols := a.Symbols()

	for name, s := range layers {
		for i := 0; i < AlphabetSize; i++ {
			for j := 0; j < AlphabetSize; j++ {
				block := []rune{symbols[i], symbols[j], symbols[(i+j)%AlphabetSize], symbols[(i*j)%AlphabetSize]}
				enc, err := s.Apply(block)
				if err != nil {
					t.Fatalf("%s Apply: %v", name, err)
				}
				if len(enc) != BlockSize {
					t.Fatalf("%s Apply changed length to %d", name, len(enc))
				}
				dec, err := s.Invert(enc)
				if err != nil {
					t.Fatalf("%s Invert: %v", name, err)
				}
				if string(dec) != string(block) {
					t.Fatalf("%s: Invert(Apply(%q)) = %q", name, string(block), string(dec))
				}
			}
		}
	}
}

func TestSBlockRejectsWrongBlockLength(t *testing.T) {
	s := NewSBlock(NewAlphabet())
	for _, block := range []string{"", "А", "АБВ", "АБВГД"} {
		if _, err := s.Apply([]rune(block)); !errors.Is(err, ErrBlockLength) {
			t.Errorf("Apply(%q) error = %v, want ErrBlockLength", block, err)
		}
		if _, err := s.Invert([]rune(block)); !errors.Is(err, ErrBlockLength) {
			t.Errorf("Invert(%q) error = %v, want ErrBlockLength", block, err)
		}
	}
}

func TestSystemSBlocks(t *testing.T) {
	sys := NewSystem()
	key := "ШИФРОВАНИЕ_КЛЮЧА"

	enc, err := sys.EncryptSBlocks("привет_мир_друг_", key)
	if err != nil {
		t.Fatalf("EncryptSBlocks: %v", err)
	}
	if enc != "ДАЩРЯОЫЦУАЫЯЛХЦЬ" {
		t.Errorf("EncryptSBlocks = %q", enc)
	}

	dec, err := sys.DecryptSBlocks(enc, key)
	if err != nil {
		t.Fatalf("DecryptSBlocks: %v", err)
	}
	if dec != "ПРИВЕТ_МИР_ДРУГ_" {
		t.Errorf("DecryptSBlocks = %q", dec)
	}
}

func TestKeyedSBlockRepeatsPerBlock(t *testing.T) {
	sys := NewSystem()

	enc, err := sys.EncryptSBlocks("АААААААА", "БВГДЕЖЗИЙКЛМНОП_")
	if err != nil {
		t.Fatalf("EncryptSBlocks: %v", err)
	}
	// the key index restarts at every block, so equal blocks encrypt equally
	if enc != "ДКРЦДКРЦ" {
		t.Errorf("EncryptSBlocks = %q, want ДКРЦДКРЦ", enc)
	}
	if enc[:len(enc)/2] != enc[len(enc)/2:] {
		t.Errorf("blocks differ: %q", enc)
	}
}

func TestSystemSBlocksKeyLength(t *testing.T) {
	sys := NewSystem()
	keys := []string{"", "КЛЮЧ", strings.Repeat("А", 15), strings.Repeat("А", 17), "ABCDEFGHIJKLMNOPQ"}

	for _, key := range keys {
		if _, err := sys.EncryptSBlocks("АБВГ", key); !errors.Is(err, ErrKeyLength) {
			t.Errorf("EncryptSBlocks key %q: error = %v, want ErrKeyLength", key, err)
		}
		if _, err := sys.DecryptSBlocks("АБВГ", key); !errors.Is(err, ErrKeyLength) {
			t.Errorf("DecryptSBlocks key %q: error = %v, want ErrKeyLength", key, err)
		}
	}
}

func TestSystemSBlocksTextLength(t *testing.T) {
	sys := NewSystem()
	// 16 Cyrillic symbols are 32 bytes; only the symbol count matters
	key := strings.Repeat("Ж", 16)

	if _, err := sys.EncryptSBlocks("АБВГД", key); !errors.Is(err, ErrTextLength) {
		t.Errorf("error = %v, want ErrTextLength", err)
	}
	if _, err := sys.EncryptSBlocks("АБВГДЕЖЗ", key); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
