package jobs

import (
	"context"
	"fmt"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
)

// SendRequestDigest emails every willing donor the most urgent open requests.
func (jr *JobRunner) SendRequestDigest() {
	jr.runWithRecovery("SendRequestDigest", func(ctx context.Context) error {
		_, err := jr.sendRequestDigest(ctx)
		return err
	})
}

func (jr *JobRunner) sendRequestDigest(ctx context.Context) (int, error) {
	active, err := jr.repos.SupportRequests.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active requests: %w", err)
	}
	if len(active) == 0 {
		logger.Info("No active support requests, digest skipped")
		return 0, nil
	}

	donors, err := jr.repos.Users.ListDonors(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list donors: %w", err)
	}

	limit := jr.config.Scheduler.DigestMaxRequests
	if limit <= 0 {
		limit = 10
	}

	sent := 0
	for _, donor := range donors {
		requests := digestFor(donor.ID, active, limit)
		if len(requests) == 0 {
			continue
		}
		if err := jr.email.SendRequestDigest(ctx, donor.Email, donor.Name, requests); err != nil {
			logger.Error("Failed to send request digest", "user_id", donor.ID, "error", err)
			continue
		}
		sent++
	}

	logger.Info("Request digest sent", "donors", len(donors), "sent", sent, "active_requests", len(active))
	return sent, nil
}

// digestFor keeps the store's urgency ordering and skips the donor's own requests.
func digestFor(donorID int32, active []domain.SupportRequest, limit int) []domain.SupportRequest {
	out := make([]domain.SupportRequest, 0, limit)
	for _, r := range active {
		if r.UserID == donorID {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}
