package wallet

import (
	"strconv"
	"strings"
)

// CSVFilename is the default attachment name for CSV exports.
const CSVFilename = "strivex-trainer-wallet.csv"

// CSVContentType is the MIME type CSV exports are served with.
const CSVContentType = "text/csv;charset=utf-8"

const csvHeader = "Client Name,Plan Title,Trainer Earnings,Admin Share,Date & Time"

// BuildCSV renders the record set as CSV text. Text fields are quoted (with
// embedded quotes doubled per RFC 4180); amounts are emitted as raw numerics.
// Rows carry the full amount alongside the trainer and admin shares even
// though the header names only the shares; consumers of the original export
// depend on that column order, so it is kept as-is. An empty set yields a
// header-only file.
func BuildCSV(records []WalletRecord) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, csvHeader)
	for _, r := range records {
		fields := []string{
			csvQuote(r.ClientName),
			csvQuote(r.PlanTitle),
			csvNumber(r.Amount),
			csvNumber(r.TrainerAmount),
			csvNumber(r.AdminShare),
			csvQuote(FormatDateTime(r.CompletedAt)),
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
