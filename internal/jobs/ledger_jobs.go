package jobs

import (
	"context"
	"fmt"

	"ptoshare-backend/internal/logger"
)

// ReconcileLedger compares every request's hours_received against the sum of its donations
// and its status against its funding. Mismatches are reported, never repaired automatically.
func (jr *JobRunner) ReconcileLedger() {
	jr.runWithRecovery("ReconcileLedger", func(ctx context.Context) error {
		_, err := jr.reconcileLedger(ctx)
		return err
	})
}

func (jr *JobRunner) reconcileLedger(ctx context.Context) (int, error) {
	discrepancies, err := jr.repos.Stats.FindLedgerDiscrepancies(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query ledger discrepancies: %w", err)
	}

	for _, d := range discrepancies {
		logger.Error("Ledger discrepancy detected",
			"request_id", d.RequestID,
			"hours_needed", d.HoursNeeded,
			"hours_received", d.HoursReceived,
			"donation_sum", d.DonationSum,
			"status", d.Status,
			"hours_drift", d.HoursDrift(),
			"status_mismatch", d.StatusMismatch(),
		)
	}
	logger.Ledger("reconciliation_finished", "discrepancies", len(discrepancies))
	return len(discrepancies), nil
}

// PurgePasswordResets removes reset tokens that can no longer be used.
func (jr *JobRunner) PurgePasswordResets() {
	jr.runWithRecovery("PurgePasswordResets", func(ctx context.Context) error {
		_, err := jr.purgePasswordResets(ctx)
		return err
	})
}

func (jr *JobRunner) purgePasswordResets(ctx context.Context) (int64, error) {
	n, err := jr.repos.PasswordResets.DeleteExpired(ctx, jr.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge password resets: %w", err)
	}
	logger.Info("Purged password reset tokens", "count", n)
	return n, nil
}
