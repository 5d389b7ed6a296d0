package wallet

import (
	"time"

	"strivex/internal/domain"
)

// Filter narrows a record set by an optional date window and an optional
// status. Bounds are inclusive and independently settable.
type Filter struct {
	From   *time.Time
	To     *time.Time
	Status string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil && !f.hasStatus()
}

func (f Filter) hasStatus() bool {
	return f.Status != "" && f.Status != domain.TxStatusAll
}

func (f Filter) matchesDate(record WalletRecord) bool {
	if f.From == nil && f.To == nil {
		return true
	}
	t, err := ParseTimestamp(record.CompletedAt)
	if err != nil {
		// Unparseable timestamps fail every bounded window.
		return false
	}
	if f.From != nil && t.Before(*f.From) {
		return false
	}
	if f.To != nil && t.After(*f.To) {
		return false
	}
	return true
}

func (f Filter) matchesStatus(record WalletRecord) bool {
	if !f.hasStatus() {
		return true
	}
	return record.Status == f.Status
}

// Matches reports whether a single record satisfies the filter.
func (f Filter) Matches(record WalletRecord) bool {
	return f.matchesDate(record) && f.matchesStatus(record)
}

// FilterRecords returns the subset of records satisfying f, preserving order.
// A zero filter is the identity.
func FilterRecords(records []WalletRecord, f Filter) []WalletRecord {
	if f.IsZero() {
		return records
	}
	out := make([]WalletRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
