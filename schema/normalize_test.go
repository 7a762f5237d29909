package schema

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "TRACKING", want: "tracking"},
		{name: "strips diacritics", input: "Dirección", want: "direccion"},
		{name: "strips spanish tilde", input: "Año de envío", want: "anodeenvio"},
		{name: "separators collapse", input: "ship_to", want: "shipto"},
		{name: "hyphen and space equal", input: "Ship-To", want: "shipto"},
		{name: "keeps digits", input: "Valor (USD) 2024", want: "valorusd2024"},
		{name: "punctuation only", input: "---", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   \t", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "keeps word boundaries", input: "Consignee Name", want: "consignee name"},
		{name: "collapses runs", input: "ship -- to__addr", want: "ship to addr"},
		{name: "trims edges", input: " (Peso KG) ", want: "peso kg"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWords(tt.input))
		})
	}
}

// Normalizing twice must equal normalizing once, for any input.
func TestNormalizeIdempotent(t *testing.T) {
	fixed := []string{
		"Dirección Destinatario", "GUÍA AÉREA", "weight_kg", "", "Ñandú 42",
		"--- ???", "Peso (Kg.)",
	}
	for _, s := range fixed {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)

		words := NormalizeWords(s)
		assert.Equal(t, words, NormalizeWords(words), "input %q", s)
	}

	faker := gofakeit.New(42)
	for i := 0; i < 200; i++ {
		s := faker.Sentence(4)
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}
