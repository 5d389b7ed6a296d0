package repository

import (
	"time"

	"strivex/internal/domain"
	"strivex/internal/models"
	"strivex/internal/wallet"

	"gorm.io/gorm"
)

// isoMillis keeps millisecond precision when handing timestamps to the
// aggregation pipeline, which compares month bounds at that resolution.
const isoMillis = "2006-01-02T15:04:05.999Z07:00"

// LedgerRepository reads and writes wallet_transactions. Filters are applied
// in SQL so date and status windows see the whole ledger, not one fetched
// page.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// historyRow is the join shape the history queries scan into.
type historyRow struct {
	ID               string
	ClientID         uint
	TrainerID        uint
	MembershipPlanID uint
	Amount           float64
	StripePaymentID  string
	StripeSessionID  string
	TrainerAmount    float64
	AdminShare       float64
	Status           string
	CompletedAt      *time.Time
	UpdatedAt        time.Time
	ClientName       string
	PlanTitle        string
}

func (row historyRow) toRaw() wallet.RawHistoryItem {
	completedAt := ""
	if row.CompletedAt != nil {
		completedAt = row.CompletedAt.Format(isoMillis)
	}
	return wallet.RawHistoryItem{
		ID:               row.ID,
		ClientID:         row.ClientID,
		TrainerID:        row.TrainerID,
		MembershipPlanID: row.MembershipPlanID,
		Amount:           row.Amount,
		StripePaymentID:  row.StripePaymentID,
		StripeSessionID:  row.StripeSessionID,
		TrainerAmount:    row.TrainerAmount,
		AdminShare:       row.AdminShare,
		Status:           row.Status,
		CompletedAt:      completedAt,
		UpdatedAt:        row.UpdatedAt.Format(isoMillis),
		ClientName:       row.ClientName,
		PlanTitle:        row.PlanTitle,
	}
}

const historySelect = `wallet_transactions.id, wallet_transactions.client_id, wallet_transactions.trainer_id,
wallet_transactions.membership_plan_id, wallet_transactions.amount, wallet_transactions.stripe_payment_id,
wallet_transactions.stripe_session_id, wallet_transactions.trainer_amount, wallet_transactions.admin_share,
wallet_transactions.status, wallet_transactions.completed_at, wallet_transactions.updated_at,
users.full_name AS client_name, membership_plans.title AS plan_title`

func (r *LedgerRepository) historyQuery(trainerID uint, f wallet.Filter) *gorm.DB {
	q := r.db.Model(&models.WalletTransaction{}).
		Joins("JOIN users ON users.id = wallet_transactions.client_id").
		Joins("JOIN membership_plans ON membership_plans.id = wallet_transactions.membership_plan_id")
	if trainerID != 0 {
		q = q.Where("wallet_transactions.trainer_id = ?", trainerID)
	}
	if f.Status != "" && f.Status != domain.TxStatusAll {
		q = q.Where("wallet_transactions.status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("wallet_transactions.completed_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("wallet_transactions.completed_at <= ?", *f.To)
	}
	return q
}

// ListHistory returns one page of a trainer's wallet history, newest first,
// along with the total row count for the filter.
func (r *LedgerRepository) ListHistory(trainerID uint, f wallet.Filter, page, limit int) ([]wallet.RawHistoryItem, int64, error) {
	q := r.historyQuery(trainerID, f)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []historyRow
	err := q.Select(historySelect).
		Order("wallet_transactions.completed_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	items := make([]wallet.RawHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toRaw())
	}
	return items, total, nil
}

// ListAllHistory returns a trainer's full filtered history, unpaginated.
// Statistics and exports run over this set so they are never limited to one
// page.
func (r *LedgerRepository) ListAllHistory(trainerID uint, f wallet.Filter) ([]wallet.RawHistoryItem, error) {
	var rows []historyRow
	err := r.historyQuery(trainerID, f).
		Select(historySelect).
		Order("wallet_transactions.completed_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]wallet.RawHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toRaw())
	}
	return items, nil
}

// ListPlatformHistory returns one page of the platform-wide ledger for admin
// review.
func (r *LedgerRepository) ListPlatformHistory(f wallet.Filter, page, limit int) ([]wallet.RawHistoryItem, int64, error) {
	return r.ListHistory(0, f, page, limit)
}

// AdminShareTotal sums the platform's share over the filtered ledger.
func (r *LedgerRepository) AdminShareTotal(f wallet.Filter) (float64, error) {
	var total float64
	err := r.historyQuery(0, f).
		Select("COALESCE(SUM(wallet_transactions.admin_share), 0)").
		Scan(&total).Error
	return total, err
}

func (r *LedgerRepository) Create(tx *models.WalletTransaction) error {
	return r.db.Create(tx).Error
}

func (r *LedgerRepository) GetByID(id string) (*models.WalletTransaction, error) {
	var tx models.WalletTransaction
	if err := r.db.Where("id = ?", id).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// TrainerEarnings is one row of the monthly rollup.
type TrainerEarnings struct {
	TrainerID uint
	Total     float64
	Count     int64
}

// MonthlyEarnings aggregates completed trainer earnings over [from, to],
// used by the month-rollover job.
func (r *LedgerRepository) MonthlyEarnings(from, to time.Time) ([]TrainerEarnings, error) {
	var rows []TrainerEarnings
	err := r.db.Model(&models.WalletTransaction{}).
		Select("trainer_id, COALESCE(SUM(trainer_amount), 0) AS total, COUNT(*) AS count").
		Where("status = ?", domain.TxStatusCompleted).
		Where("completed_at BETWEEN ? AND ?", from, to).
		Group("trainer_id").
		Scan(&rows).Error
	return rows, err
}
