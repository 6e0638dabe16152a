package jobs

import (
	"context"
	"log/slog"

	"buyback/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LedgerAuditJob reconciles every partner's stored balance against the sum
// of its wallet transactions. Runs hourly; a mismatch means a write path
// bypassed the ledger and needs an operator to look at it.
type LedgerAuditJob struct {
	handler queries.AuditWalletsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLedgerAuditJob creates a new job for wallet ledger reconciliation.
func NewLedgerAuditJob(handler queries.AuditWalletsQueryHandler, logger *slog.Logger) *LedgerAuditJob {
	return &LedgerAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "ledger_audit_job"),
	}
}

// Start begins the ledger audit job to run at the top of every hour.
func (j *LedgerAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		mismatches, err := j.handler.Handle(ctx, queries.NewAuditWalletsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Ledger audit job failed", "error", err)
			return
		}

		for _, m := range mismatches {
			j.logger.ErrorContext(ctx, "Wallet balance disagrees with ledger",
				"partnerPhone", m.PartnerPhone,
				"partnerName", m.PartnerName,
				"balance", m.Balance,
				"ledgerSum", m.LedgerSum,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger audit job started (running hourly)")
	return nil
}

// Stop stops the ledger audit job.
func (j *LedgerAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Ledger audit job stopped")
}
