package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRaw() RawHistoryItem {
	return RawHistoryItem{
		ID:               "tx-1",
		ClientID:         42,
		TrainerID:        7,
		MembershipPlanID: 3,
		Amount:           100,
		StripePaymentID:  "pi_123",
		StripeSessionID:  "cs_456",
		TrainerAmount:    70,
		AdminShare:       30,
		Status:           "COMPLETED",
		CompletedAt:      "2025-01-05T10:00:00Z",
		UpdatedAt:        "2025-01-05T10:01:00Z",
		ClientName:       "Jane Doe",
		PlanTitle:        "Gold Plan",
	}
}

func TestMapHistoryItem(t *testing.T) {
	t.Run("PreservesRetainedFields", func(t *testing.T) {
		raw := sampleRaw()
		rec := MapHistoryItem(raw)
		assert.Equal(t, "tx-1", rec.ID)
		assert.Equal(t, "Jane Doe", rec.ClientName)
		assert.Equal(t, "Gold Plan", rec.PlanTitle)
		assert.Equal(t, 100.0, rec.Amount)
		assert.Equal(t, 70.0, rec.TrainerAmount)
		assert.Equal(t, 30.0, rec.AdminShare)
		assert.Equal(t, "2025-01-05T10:00:00Z", rec.CompletedAt)
		assert.Equal(t, "COMPLETED", rec.Status)
	})

	t.Run("TotalOnZeroValues", func(t *testing.T) {
		rec := MapHistoryItem(RawHistoryItem{})
		assert.Equal(t, WalletRecord{}, rec)
	})
}

func TestMapHistoryItems(t *testing.T) {
	raws := []RawHistoryItem{sampleRaw(), {ID: "tx-2"}}
	records := MapHistoryItems(raws)
	require.Len(t, records, 2)
	assert.Equal(t, "tx-1", records[0].ID)
	assert.Equal(t, "tx-2", records[1].ID)

	assert.Empty(t, MapHistoryItems(nil))
}

func TestParseHistoryItem(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		rec, err := ParseHistoryItem(sampleRaw())
		require.NoError(t, err)
		assert.Equal(t, MapHistoryItem(sampleRaw()), rec)
	})

	t.Run("MissingID", func(t *testing.T) {
		raw := sampleRaw()
		raw.ID = ""
		_, err := ParseHistoryItem(raw)
		assert.ErrorIs(t, err, ErrMissingID)
	})

	t.Run("BadTimestamp", func(t *testing.T) {
		raw := sampleRaw()
		raw.CompletedAt = "not-a-date"
		_, err := ParseHistoryItem(raw)
		assert.ErrorIs(t, err, ErrInvalidCompletedAt)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		raw := sampleRaw()
		raw.TrainerAmount = -1
		_, err := ParseHistoryItem(raw)
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})
}

func TestParseTimestamp(t *testing.T) {
	cases := map[string]time.Time{
		"2025-01-05T10:00:00Z":     time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
		"2025-01-05T10:00:00.250Z": time.Date(2025, 1, 5, 10, 0, 0, 250_000_000, time.UTC),
		"2025-01-05T10:00:00":      time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
		"2025-01-05":               time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	for input, want := range cases {
		got, err := ParseTimestamp(input)
		require.NoError(t, err, input)
		assert.True(t, got.Equal(want), input)
	}

	_, err := ParseTimestamp("05/01/2025")
	assert.Error(t, err)
}
