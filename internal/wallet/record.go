package wallet

import (
	"errors"
	"fmt"
	"time"
)

// RawHistoryItem is a wallet-history row as the ledger produces it, including
// gateway identifiers that never leave the backend.
type RawHistoryItem struct {
	ID               string  `json:"id"`
	ClientID         uint    `json:"clientId"`
	TrainerID        uint    `json:"trainerId"`
	MembershipPlanID uint    `json:"membershipPlanId"`
	Amount           float64 `json:"amount"`
	StripePaymentID  string  `json:"stripePaymentId"`
	StripeSessionID  string  `json:"stripeSessionId"`
	TrainerAmount    float64 `json:"trainerAmount"`
	AdminShare       float64 `json:"adminShare"`
	Status           string  `json:"status"`
	CompletedAt      string  `json:"completedAt"`
	UpdatedAt        string  `json:"updatedAt"`
	ClientName       string  `json:"clientName"`
	PlanTitle        string  `json:"planTitle"`
}

// WalletRecord is the canonical shape the aggregation, statistics and export
// stages operate on. CompletedAt stays an ISO 8601 string; stages that need a
// time parse it on demand.
type WalletRecord struct {
	ID            string  `json:"id"`
	ClientName    string  `json:"clientName"`
	PlanTitle     string  `json:"planTitle"`
	Amount        float64 `json:"amount"`
	TrainerAmount float64 `json:"trainerAmount"`
	AdminShare    float64 `json:"adminShare"`
	CompletedAt   string  `json:"completedAt"`
	Status        string  `json:"status"`
}

// MapHistoryItem normalizes a raw history row into a WalletRecord. It is total:
// zero values pass through and gateway identifiers are dropped.
func MapHistoryItem(raw RawHistoryItem) WalletRecord {
	return WalletRecord{
		ID:            raw.ID,
		ClientName:    raw.ClientName,
		PlanTitle:     raw.PlanTitle,
		Amount:        raw.Amount,
		TrainerAmount: raw.TrainerAmount,
		AdminShare:    raw.AdminShare,
		CompletedAt:   raw.CompletedAt,
		Status:        raw.Status,
	}
}

// MapHistoryItems maps a page of raw rows, preserving order.
func MapHistoryItems(raws []RawHistoryItem) []WalletRecord {
	records := make([]WalletRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, MapHistoryItem(raw))
	}
	return records
}

var (
	ErrMissingID          = errors.New("history item has no id")
	ErrInvalidCompletedAt = errors.New("history item completedAt is not a timestamp")
	ErrNegativeAmount     = errors.New("history item has a negative amount")
)

// ParseHistoryItem is the validating counterpart of MapHistoryItem, used at
// ingestion boundaries so malformed rows are rejected instead of propagating
// as zero values into downstream arithmetic.
func ParseHistoryItem(raw RawHistoryItem) (WalletRecord, error) {
	if raw.ID == "" {
		return WalletRecord{}, ErrMissingID
	}
	if _, err := ParseTimestamp(raw.CompletedAt); err != nil {
		return WalletRecord{}, fmt.Errorf("%w: %q", ErrInvalidCompletedAt, raw.CompletedAt)
	}
	if raw.Amount < 0 || raw.TrainerAmount < 0 || raw.AdminShare < 0 {
		return WalletRecord{}, ErrNegativeAmount
	}
	return MapHistoryItem(raw), nil
}

// timestampLayouts are accepted CompletedAt encodings, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
