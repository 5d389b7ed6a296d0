package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		1234.5:     "$1,234.50",
		0:          "$0.00",
		70:         "$70.00",
		999.999:    "$1,000.00",
		1234567.89: "$1,234,567.89",
		-42.5:      "-$42.50",
	}
	for input, want := range cases {
		assert.Equal(t, want, FormatCurrency(input))
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "05 Jan 2025, 03:45 PM", FormatDateTime("2025-01-05T15:45:00Z"))
	assert.Equal(t, "05 Jan 2025, 10:00 AM", FormatDateTime("2025-01-05T10:00:00Z"))
	assert.Equal(t, "Invalid Date", FormatDateTime("garbage"))
	assert.Equal(t, "Invalid Date", FormatDateTime(""))
}
