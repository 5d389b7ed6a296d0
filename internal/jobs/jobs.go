package jobs

import (
	"context"
	"time"

	"strivex/internal/cache"
	"strivex/internal/repository"
	"strivex/internal/wallet"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Runner schedules the wallet maintenance jobs: a nightly cache sweep and a
// month-rollover earnings snapshot.
type Runner struct {
	cron   *cron.Cron
	ledger *repository.LedgerRepository
	cache  *cache.Cache
}

func NewRunner(ledger *repository.LedgerRepository, c *cache.Cache) *Runner {
	return &Runner{
		cron:   cron.New(),
		ledger: ledger,
		cache:  c,
	}
}

func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc("0 3 * * *", func() {
		r.run("cache_sweep", r.SweepCache)
	}); err != nil {
		return err
	}
	// Shortly after midnight on the 1st, once the previous month is closed.
	if _, err := r.cron.AddFunc("5 0 1 * *", func() {
		r.run("month_rollover", r.SnapshotPreviousMonth)
	}); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Runner) Stop() {
	r.cron.Stop()
}

func (r *Runner) run(name string, job func()) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithField("job", name).WithField("panic", rec).Error("job panicked")
		}
	}()
	logrus.WithField("job", name).Info("job starting")
	job()
	logrus.WithField("job", name).Info("job completed")
}

// SweepCache drops every cached history page so stale filters never outlive
// their TTL by much.
func (r *Runner) SweepCache() {
	if err := r.cache.DeletePrefix(context.Background(), "wallet:history:"); err != nil {
		logrus.WithError(err).Error("cache sweep failed")
	}
}

// SnapshotPreviousMonth logs per-trainer earnings totals for the month that
// just closed.
func (r *Runner) SnapshotPreviousMonth() {
	monthStart, _ := wallet.MonthWindow(time.Now())
	start, end := wallet.MonthWindow(monthStart.Add(-time.Millisecond))
	rows, err := r.ledger.MonthlyEarnings(start, end)
	if err != nil {
		logrus.WithError(err).Error("monthly earnings rollup failed")
		return
	}
	for _, row := range rows {
		logrus.WithFields(logrus.Fields{
			"trainer_id":   row.TrainerID,
			"month":        start.Format("2006-01"),
			"earnings":     row.Total,
			"transactions": row.Count,
		}).Info("monthly earnings snapshot")
	}
}
