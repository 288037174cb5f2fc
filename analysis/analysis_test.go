package analysis

import (
	"math"
	"testing"

	"trithemius-backend/crypto"
)

func TestDiffCount(t *testing.T) {
	tests := []struct {
		name     string
		original string
		modified string
		want     int
		ratio    float64
	}{
		{"equal", "ПРИВЕТ", "ПРИВЕТ", 0, 0},
		{"one symbol", "ПРИВЕТ", "ПРИВЁТ", 1, 1.0 / 6},
		{"longer modified", "АБ", "АБВГ", 2, 0.5},
		{"longer original", "АБВГ", "ЯБ", 3, 0.75},
		{"both empty", "", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiffCount(tt.original, tt.modified); got != tt.want {
				t.Errorf("DiffCount = %d, want %d", got, tt.want)
			}
			if got := ChangeRatio(tt.original, tt.modified); math.Abs(got-tt.ratio) > 1e-9 {
				t.Errorf("ChangeRatio = %f, want %f", got, tt.ratio)
			}
		})
	}
}

func TestValidateAvalanche(t *testing.T) {
	tests := []struct {
		diff      int
		ratio     float64
		threshold float64
		want      bool
	}{
		{0, 0, 0.25, false},
		{1, 0.5, 0.25, false},
		{2, 0.2, 0.25, false},
		{4, 1.0 / 3, 0.25, true},
		{2, 0.25, 0.25, true},
	}
	for _, tt := range tests {
		if got := ValidateAvalanche(tt.diff, tt.ratio, tt.threshold); got != tt.want {
			t.Errorf("ValidateAvalanche(%d, %f, %f) = %v, want %v", tt.diff, tt.ratio, tt.threshold, got, tt.want)
		}
	}
}

func TestMutateLast(t *testing.T) {
	a := crypto.NewAlphabet()
	tests := map[string]string{
		"АБВГДЕЖЗ": "АБВГДЕЖИ",
		"кот, ":    "КОУ, ",
		"_":        "А",
		"...":      "...",
	}
	for in, want := range tests {
		if got := MutateLast(a, in); got != want {
			t.Errorf("MutateLast(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAnalyzeDefaults(t *testing.T) {
	report, err := Analyze(crypto.NewSystem(), Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	want := []string{"Г", "И", "Н", "Т"}
	if len(report.Positions) != len(want) {
		t.Fatalf("got %d positions, want %d", len(report.Positions), len(want))
	}
	for i, p := range report.Positions {
		if p.Position != i || p.Input != "А" || p.Output != want[i] {
			t.Errorf("position %d = %+v, want output %s", i, p, want[i])
		}
	}
	if !report.Distinct {
		t.Error("expected distinct outputs per position")
	}

	ko := report.KeyOrder
	if ko.Ciphertext != "РНЮМК" || !ko.RoundTrip || ko.Decrypted != "ТЕКСТ" {
		t.Errorf("key order = %+v", ko)
	}

	av := report.Avalanche
	if av.Ciphertext != "ЛЧЩФЫМЫЗЮЭНТ" || av.ModifiedCiphertext != "ЛЧЩФ,МШЗЦЕНТ" {
		t.Errorf("avalanche ciphertexts = %q, %q", av.Ciphertext, av.ModifiedCiphertext)
	}
	if av.Changed != 4 || av.Total != 12 || !av.Present {
		t.Errorf("avalanche = %+v", av)
	}
	if math.Abs(av.Percent-100.0/3) > 1e-9 {
		t.Errorf("percent = %f", av.Percent)
	}
}

func TestAnalyzeDerivesModifiedText(t *testing.T) {
	report, err := Analyze(crypto.NewSystem(), Options{Text: "ШИФРОВАНИЕ", Key: "КЛЮЧ"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Avalanche.Modified != "ШИФРОВАНИЖ" {
		t.Errorf("modified = %q, want ШИФРОВАНИЖ", report.Avalanche.Modified)
	}
	if report.Avalanche.Changed == 0 {
		t.Error("expected changed symbols")
	}
}

func TestAnalyzeRejectsBadSymbol(t *testing.T) {
	for _, symbol := range []string{"АБ", "Q", "Ё"} {
		if _, err := Analyze(crypto.NewSystem(), Options{Symbol: symbol}); err == nil {
			t.Errorf("Analyze(symbol %q) expected error", symbol)
		}
	}
}
