package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name  string
		price string
		want  float64
	}{
		{"plain", "150.00", 150.0},
		{"currency suffix", "150.00 ر.س", 150.0},
		{"thousands separator", "1,299.00", 1299.0},
		{"currency prefix", "SAR 85.50", 85.50},
		{"integer", "200", 200.0},
		{"empty", "", 0},
		{"garbage", "اتصل بنا", 0},
		{"arabic-indic digits", "١٥٠", 0},
		{"multiple dots", "1.2.3", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePrice(tc.price))
		})
	}
}
