package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceMarshalQuotesNonJSONNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   Price
		want string
	}{
		{"plain integer", Price("10"), `10`},
		{"plain decimal", Price("149.9"), `149.9`},
		{"negative", Price("-5.5"), `-5.5`},
		{"exponent", Price("1e3"), `1e3`},
		{"currency string", Price("R$ 149,90"), `"R$ 149,90"`},
		{"nan", Price("NaN"), `"NaN"`},
		{"positive infinity", Price("+Inf"), `"+Inf"`},
		{"leading zeros", Price("007"), `"007"`},
		{"explicit plus", Price("+5"), `"+5"`},
		{"digit underscores", Price("1_000"), `"1_000"`},
		{"empty", Price(""), `""`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
			assert.True(t, json.Valid(out))
		})
	}
}

func TestPriceRoundTripPreservesRawText(t *testing.T) {
	for _, raw := range []string{"10", "149.9", "R$ 149,90", "NaN", "007", "+5", "1_000", "sob consulta"} {
		in := Price(raw)
		data, err := json.Marshal(in)
		require.NoError(t, err, raw)

		var out Price
		require.NoError(t, json.Unmarshal(data, &out), raw)
		assert.Equal(t, in, out, raw)
	}
}
