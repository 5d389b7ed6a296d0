package service

import (
	"context"
	"fmt"
	"time"

	"strivex/internal/cache"
	"strivex/internal/domain"
	"strivex/internal/models"
	"strivex/internal/repository"
	"strivex/internal/wallet"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// WalletService drives the ledger aggregation pipeline: fetch, map, filter,
// aggregate, export. History pages are cached in Redis keyed by trainer,
// window and page.
type WalletService struct {
	ledger     *repository.LedgerRepository
	cache      *cache.Cache
	historyTTL time.Duration
}

func NewWalletService(ledger *repository.LedgerRepository, c *cache.Cache, historyTTL time.Duration) *WalletService {
	return &WalletService{ledger: ledger, cache: c, historyTTL: historyTTL}
}

// HistoryPage bundles one page of records with its pagination metadata.
type HistoryPage struct {
	Records []wallet.WalletRecord `json:"records"`
	Page    wallet.Page           `json:"pagination"`
}

func historyKey(trainerID uint, f wallet.Filter, page, limit int) string {
	from, to := "-", "-"
	if f.From != nil {
		from = f.From.UTC().Format(time.RFC3339)
	}
	if f.To != nil {
		to = f.To.UTC().Format(time.RFC3339)
	}
	status := f.Status
	if status == "" {
		status = domain.TxStatusAll
	}
	return fmt.Sprintf("wallet:history:%d:p%d:l%d:s%s:f%s:t%s", trainerID, page, limit, status, from, to)
}

func trainerPrefix(trainerID uint) string {
	return fmt.Sprintf("wallet:history:%d:", trainerID)
}

// History returns one page of the trainer's filtered wallet history.
func (s *WalletService) History(ctx context.Context, trainerID uint, f wallet.Filter, page, limit int) (HistoryPage, error) {
	key := historyKey(trainerID, f, page, limit)
	var cached HistoryPage
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}
	raws, total, err := s.ledger.ListHistory(trainerID, f, page, limit)
	if err != nil {
		return HistoryPage{}, err
	}
	result := HistoryPage{
		Records: wallet.MapHistoryItems(raws),
		Page:    wallet.NewPage(page, limit, total),
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.historyTTL); err != nil {
			logrus.WithError(err).Warn("wallet history cache write failed")
		}
	}
	return result, nil
}

// Statistics computes earnings aggregates over the trainer's full filtered
// history at the given wall-clock instant.
func (s *WalletService) Statistics(ctx context.Context, trainerID uint, f wallet.Filter, now time.Time) (wallet.WalletStatistics, error) {
	raws, err := s.ledger.ListAllHistory(trainerID, f)
	if err != nil {
		return wallet.WalletStatistics{}, err
	}
	return wallet.ComputeStatistics(wallet.MapHistoryItems(raws), now), nil
}

// ExportCSV renders the trainer's filtered history as CSV text.
func (s *WalletService) ExportCSV(ctx context.Context, trainerID uint, f wallet.Filter) (string, error) {
	raws, err := s.ledger.ListAllHistory(trainerID, f)
	if err != nil {
		return "", err
	}
	return wallet.BuildCSV(wallet.MapHistoryItems(raws)), nil
}

// ExportReport renders the trainer's filtered history as the printable
// wallet report.
func (s *WalletService) ExportReport(ctx context.Context, trainerID uint, f wallet.Filter, now time.Time) (string, error) {
	raws, err := s.ledger.ListAllHistory(trainerID, f)
	if err != nil {
		return "", err
	}
	return wallet.BuildReport(wallet.MapHistoryItems(raws), now)
}

// RecordSettlement validates a settlement through the parsing boundary and
// appends it to the ledger, then drops the trainer's cached history pages.
func (s *WalletService) RecordSettlement(ctx context.Context, raw wallet.RawHistoryItem) (*models.WalletTransaction, error) {
	if raw.ID == "" {
		raw.ID = uuid.New().String()
	}
	record, err := wallet.ParseHistoryItem(raw)
	if err != nil {
		return nil, err
	}
	completedAt, err := wallet.ParseTimestamp(record.CompletedAt)
	if err != nil {
		return nil, err
	}
	tx := &models.WalletTransaction{
		ID:               record.ID,
		ClientID:         raw.ClientID,
		TrainerID:        raw.TrainerID,
		MembershipPlanID: raw.MembershipPlanID,
		Amount:           record.Amount,
		TrainerAmount:    record.TrainerAmount,
		AdminShare:       record.AdminShare,
		StripePaymentID:  raw.StripePaymentID,
		StripeSessionID:  raw.StripeSessionID,
		Status:           record.Status,
		CompletedAt:      &completedAt,
	}
	if tx.Status == "" {
		tx.Status = domain.TxStatusCompleted
	}
	if err := s.ledger.Create(tx); err != nil {
		return nil, err
	}
	s.Invalidate(ctx, raw.TrainerID)
	logrus.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"trainer_id":     tx.TrainerID,
		"amount":         tx.Amount,
		"trainer_amount": tx.TrainerAmount,
	}).Info("settlement recorded")
	return tx, nil
}

// Invalidate drops every cached history page for the trainer.
func (s *WalletService) Invalidate(ctx context.Context, trainerID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePrefix(ctx, trainerPrefix(trainerID)); err != nil {
		logrus.WithError(err).WithField("trainer_id", trainerID).Warn("wallet cache invalidation failed")
	}
}

// Snapshot recomputes the trainer's completed-earnings statistics for the
// live dashboard feed. The completed-only view is applied by the in-memory
// filter engine over the full history.
func (s *WalletService) Snapshot(ctx context.Context, trainerID uint) (wallet.WalletStatistics, error) {
	raws, err := s.ledger.ListAllHistory(trainerID, wallet.Filter{})
	if err != nil {
		return wallet.WalletStatistics{}, err
	}
	records := wallet.FilterRecords(wallet.MapHistoryItems(raws), wallet.Filter{Status: domain.TxStatusCompleted})
	return wallet.ComputeStatistics(records, time.Now()), nil
}
