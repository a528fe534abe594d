package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/powerfitbr/powerfit/internal/domain"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain integer", "10", 10},
		{"plain decimal", "149.90", 149.9},
		{"brl currency", "R$ 149,90", 149.9},
		{"brl no space", "R$10,00", 10},
		{"brl thousands", "R$ 1.234,56", 1234.56},
		{"comma decimal only", "49,90", 49.9},
		{"surrounding whitespace", "  R$ 99,00  ", 99},
		{"unparseable text", "gratuito", 0},
		{"empty", "", 0},
		{"symbols only", "R$ ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParsePrice(domain.Price(tt.input)), 1e-9)
		})
	}
}

func TestParsePriceStrict(t *testing.T) {
	_, ok := ParsePriceStrict(domain.Price("R$ 29,90"))
	assert.True(t, ok)

	v, ok := ParsePriceStrict(domain.Price("não sei"))
	assert.False(t, ok)
	assert.Zero(t, v)
}
