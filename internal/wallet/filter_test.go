package wallet

import (
	"testing"
	"time"

	"strivex/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAt(id, completedAt, status string) WalletRecord {
	return WalletRecord{ID: id, CompletedAt: completedAt, Status: status}
}

func tp(t time.Time) *time.Time { return &t }

func TestFilterRecords_DateWindow(t *testing.T) {
	records := []WalletRecord{
		recordAt("jan", "2025-01-10T12:00:00Z", "COMPLETED"),
		recordAt("feb", "2025-02-10T12:00:00Z", "COMPLETED"),
		recordAt("mar", "2025-03-10T12:00:00Z", "COMPLETED"),
	}

	t.Run("BothBoundsInclusive", func(t *testing.T) {
		f := Filter{
			From: tp(time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)),
			To:   tp(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)),
		}
		got := FilterRecords(records, f)
		require.Len(t, got, 2)
		assert.Equal(t, "feb", got[0].ID)
		assert.Equal(t, "mar", got[1].ID)
	})

	t.Run("FromOnly", func(t *testing.T) {
		f := Filter{From: tp(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))}
		got := FilterRecords(records, f)
		require.Len(t, got, 2)
		assert.Equal(t, "feb", got[0].ID)
	})

	t.Run("ToOnly", func(t *testing.T) {
		f := Filter{To: tp(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))}
		got := FilterRecords(records, f)
		require.Len(t, got, 1)
		assert.Equal(t, "jan", got[0].ID)
	})

	t.Run("NoBoundsIsIdentity", func(t *testing.T) {
		got := FilterRecords(records, Filter{})
		assert.Equal(t, records, got)
	})

	t.Run("UnparseableTimestampFailsBoundedWindow", func(t *testing.T) {
		bad := append(records, recordAt("bad", "garbage", "COMPLETED"))
		f := Filter{From: tp(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))}
		got := FilterRecords(bad, f)
		assert.Len(t, got, 3)
		// ...but passes when no window is set.
		assert.Len(t, FilterRecords(bad, Filter{}), 4)
	})
}

func TestFilterRecords_Status(t *testing.T) {
	records := []WalletRecord{
		recordAt("a", "2025-01-10T12:00:00Z", "COMPLETED"),
		recordAt("b", "2025-01-11T12:00:00Z", "PENDING"),
	}

	t.Run("ExactMatch", func(t *testing.T) {
		got := FilterRecords(records, Filter{Status: "PENDING"})
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].ID)
	})

	t.Run("AllSentinelPassesEverything", func(t *testing.T) {
		assert.Len(t, FilterRecords(records, Filter{Status: domain.TxStatusAll}), 2)
		assert.Len(t, FilterRecords(records, Filter{Status: ""}), 2)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		assert.Empty(t, FilterRecords(records, Filter{Status: "pending"}))
	})
}

func TestFilterRecords_Idempotent(t *testing.T) {
	records := []WalletRecord{
		recordAt("a", "2025-01-10T12:00:00Z", "COMPLETED"),
		recordAt("b", "2025-06-10T12:00:00Z", "PENDING"),
	}
	f := Filter{
		From:   tp(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		To:     tp(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
		Status: "COMPLETED",
	}
	once := FilterRecords(records, f)
	twice := FilterRecords(once, f)
	assert.Equal(t, once, twice)
}
