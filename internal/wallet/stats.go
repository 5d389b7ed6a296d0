package wallet

import "time"

// WalletStatistics is derived from a record set and a wall-clock "now"; it is
// recomputed on demand and never stored.
type WalletStatistics struct {
	TotalEarnings            float64 `json:"totalEarnings"`
	TotalTransactions        int     `json:"totalTransactions"`
	CurrentMonthEarnings     float64 `json:"currentMonthEarnings"`
	CurrentMonthTransactions int     `json:"currentMonthTransactions"`
}

// MonthWindow returns the inclusive bounds of now's calendar month in now's
// location: the first instant of the month and the last millisecond of it.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// ComputeStatistics reduces a record set to its earnings aggregates. Total
// figures sum trainer shares over every record; current-month figures are the
// same aggregates restricted to records completed within now's calendar month.
// Records with unparseable timestamps count toward totals but never toward the
// month window.
func ComputeStatistics(records []WalletRecord, now time.Time) WalletStatistics {
	start, end := MonthWindow(now)
	stats := WalletStatistics{}
	for _, r := range records {
		stats.TotalEarnings += r.TrainerAmount
		stats.TotalTransactions++
		t, err := ParseTimestamp(r.CompletedAt)
		if err != nil {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			stats.CurrentMonthEarnings += r.TrainerAmount
			stats.CurrentMonthTransactions++
		}
	}
	return stats
}
