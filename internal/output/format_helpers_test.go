package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"six figures groups", 206000, "$206,000.00"},
		{"cents preserved", 52319.88, "$52,319.88"},
		{"under a thousand", 122.62, "$122.62"},
		{"exactly a thousand", 1000, "$1,000.00"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"zero", 0, "$0.00"},
		{"negative", -5000, "-$5,000.00"},
		{"rounds half cent", 10.005, "$10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.input))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "14.0%", FormatPercent(14))
	assert.Equal(t, "3.5%", FormatPercent(3.5))
	assert.Equal(t, "31.5%", FormatPercent(31.52))
	assert.Equal(t, "-5.0%", FormatPercent(-5))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1680", FormatCount(1680))
	assert.Equal(t, "1680", FormatCount(1680.4))
	assert.Equal(t, "0", FormatCount(0))
}

func TestParseCurrencyInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"bare number", "1500.25", 1500.25},
		{"dollar sign", "$206000", 206000},
		{"grouped", "$206,000.00", 206000},
		{"spaces", " 1 500 ", 1500},
		{"negative", "-$1,000", -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCurrencyInput(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}

	t.Run("empty rejected", func(t *testing.T) {
		_, err := ParseCurrencyInput("   ")
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseCurrencyInput("twelve dollars")
		assert.Error(t, err)
	})
}
