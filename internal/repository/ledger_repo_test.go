package repository

import (
	"testing"
	"time"

	"strivex/internal/models"
	"strivex/internal/wallet"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

var historyColumns = []string{
	"id", "client_id", "trainer_id", "membership_plan_id", "amount",
	"stripe_payment_id", "stripe_session_id", "trainer_amount", "admin_share",
	"status", "completed_at", "updated_at", "client_name", "plan_title",
}

func TestLedgerRepository_ListHistory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	completed := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT wallet_transactions.id").
		WillReturnRows(sqlmock.NewRows(historyColumns).
			AddRow("tx-1", 42, 7, 3, 100.0, "pi_1", "cs_1", 70.0, 30.0,
				"COMPLETED", completed, completed, "Jane Doe", "Gold Plan"))

	items, total, err := repo.ListHistory(7, wallet.Filter{Status: "COMPLETED"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "tx-1", items[0].ID)
	assert.Equal(t, "Jane Doe", items[0].ClientName)
	assert.Equal(t, "Gold Plan", items[0].PlanTitle)
	assert.Equal(t, "2025-01-05T10:00:00Z", items[0].CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_ListAllHistory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	mock.ExpectQuery("SELECT wallet_transactions.id").
		WillReturnRows(sqlmock.NewRows(historyColumns))

	items, err := repo.ListAllHistory(7, wallet.Filter{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `wallet_transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	completed := time.Now()
	err := repo.Create(&models.WalletTransaction{
		ID:               "tx-9",
		ClientID:         42,
		TrainerID:        7,
		MembershipPlanID: 3,
		Amount:           50,
		TrainerAmount:    35,
		AdminShare:       15,
		Status:           "COMPLETED",
		CompletedAt:      &completed,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_AdminShareTotal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(123.45))

	total, err := repo.AdminShareTotal(wallet.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 123.45, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_MonthlyEarnings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	mock.ExpectQuery("SELECT trainer_id").
		WillReturnRows(sqlmock.NewRows([]string{"trainer_id", "total", "count"}).
			AddRow(7, 700.0, 10).
			AddRow(8, 120.0, 2))

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 999_000_000, time.UTC)
	rows, err := repo.MonthlyEarnings(start, end)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(7), rows[0].TrainerID)
	assert.Equal(t, 700.0, rows[0].Total)
	assert.Equal(t, int64(10), rows[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
