package wallet

import (
	"strconv"
	"strings"
)

// dateTimeLayout renders "05 Jan 2025, 03:45 PM".
const dateTimeLayout = "02 Jan 2006, 03:04 PM"

// FormatDateTime renders an ISO 8601 timestamp for display. Unparseable input
// renders as "Invalid Date", matching what the web client showed.
func FormatDateTime(iso string) string {
	t, err := ParseTimestamp(iso)
	if err != nil {
		return "Invalid Date"
	}
	return t.Format(dateTimeLayout)
}

// FormatCurrency renders a USD amount with two fraction digits and comma
// grouping: 1234.5 -> "$1,234.50".
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
