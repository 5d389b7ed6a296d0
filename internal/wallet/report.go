package wallet

import (
	"bytes"
	"html/template"
	"time"
)

// ReportTitle is the document title of the printable wallet report.
const ReportTitle = "StriveX - Trainer Wallet Report"

// ReportContentType is the MIME type the report is served with; the browser
// opens it in a new context and the embedded script triggers the print dialog.
const ReportContentType = "text/html; charset=utf-8"

// printDelayMS gives the new browsing context time to lay out before the
// print dialog fires.
const printDelayMS = 300

type reportRow struct {
	Client   string
	Plan     string
	Earnings string
	Share    string
	Date     string
}

type reportData struct {
	Title       string
	Rows        []reportRow
	Count       int
	Total       string
	GeneratedAt string
	PrintDelay  int
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 32px; color: #1c1c28; }
  .brand { font-size: 24px; font-weight: bold; color: #6d28d9; }
  .brand span { color: #1c1c28; }
  .subtitle { color: #6b7280; margin-top: 4px; }
  .summary { display: flex; gap: 24px; margin: 24px 0; padding: 16px; background: #f5f3ff; border-radius: 8px; }
  .summary div { flex: 1; }
  .summary .label { font-size: 12px; color: #6b7280; text-transform: uppercase; }
  .summary .value { font-size: 20px; font-weight: bold; margin-top: 4px; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; font-size: 12px; text-transform: uppercase; color: #6b7280; border-bottom: 2px solid #e5e7eb; padding: 8px; }
  td { padding: 8px; border-bottom: 1px solid #e5e7eb; font-size: 14px; }
  .empty { text-align: center; color: #6b7280; padding: 48px 0; }
</style>
</head>
<body>
<div class="brand">Strive<span>X</span></div>
<div class="subtitle">Trainer Wallet Report</div>
<div class="summary">
  <div><div class="label">Transactions</div><div class="value">{{.Count}}</div></div>
  <div><div class="label">Total Earnings</div><div class="value">{{.Total}}</div></div>
  <div><div class="label">Generated</div><div class="value">{{.GeneratedAt}}</div></div>
</div>
{{if .Rows}}<table>
<thead><tr><th>Client</th><th>Plan</th><th>Your Earnings</th><th>Commission</th><th>Date</th></tr></thead>
<tbody>
{{range .Rows}}<tr><td>{{.Client}}</td><td>{{.Plan}}</td><td>{{.Earnings}}</td><td>{{.Share}}</td><td>{{.Date}}</td></tr>
{{end}}</tbody>
</table>{{else}}<div class="empty">No transactions found</div>{{end}}
<script>setTimeout(function () { window.print(); }, {{.PrintDelay}});</script>
</body>
</html>
`))

// BuildReport renders the record set as a printable HTML document. An empty
// set still produces a document, with the table replaced by a placeholder.
func BuildReport(records []WalletRecord, now time.Time) (string, error) {
	data := reportData{
		Title:       ReportTitle,
		Rows:        make([]reportRow, 0, len(records)),
		GeneratedAt: now.Format("02 Jan 2006"),
		PrintDelay:  printDelayMS,
	}
	var total float64
	for _, r := range records {
		total += r.TrainerAmount
		data.Rows = append(data.Rows, reportRow{
			Client:   r.ClientName,
			Plan:     r.PlanTitle,
			Earnings: FormatCurrency(r.TrainerAmount),
			Share:    FormatCurrency(r.AdminShare),
			Date:     FormatDateTime(r.CompletedAt),
		})
	}
	data.Count = len(records)
	data.Total = FormatCurrency(total)

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
