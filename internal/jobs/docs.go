// Package jobs provides scheduled background tasks for the buy-back service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every ten seconds to drain the notification outbox and push queued intents
// 2. LedgerAuditJob - Runs hourly to reconcile partner wallet balances against their transaction ledgers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, auditHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - Dispatch job marks intents handled even when individual pushes fail, so
//     delivery stays at-most-once; failures are logged by the handler
//   - Audit job logs every balance/ledger mismatch as an error for operators
//   - Failed job starts will stop any already running jobs
package jobs
