package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
)

type ledgerService struct {
	store repository.LedgerStore
	now   func() time.Time
}

func NewLedgerService(store repository.LedgerStore) LedgerService {
	return &ledgerService{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// RecordDonation moves hours from the donor to the support request in one unit of work.
// Donor and request rows stay locked from the balance check until commit.
func (s *ledgerService) RecordDonation(ctx context.Context, donorID, requestID, hours int32, message string) (*domain.DonationReceipt, error) {
	const method = "ledgerService.RecordDonation"
	logger.EnterMethod(method, "donorID", donorID, "requestID", requestID, "hours", hours)

	if hours < 1 {
		return nil, fmt.Errorf("%w: hours must be a positive integer", domain.ErrValidation)
	}
	if donorID <= 0 || requestID <= 0 {
		return nil, fmt.Errorf("%w: donor and request are required", domain.ErrValidation)
	}

	var receipt *domain.DonationReceipt
	err := s.store.RunInTx(ctx, func(tx repository.LedgerTx) error {
		donor, err := tx.LockUser(ctx, donorID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInsufficientBalance
		}
		if err != nil {
			return err
		}
		if donor.AvailablePTOHours < hours {
			return domain.ErrInsufficientBalance
		}

		req, err := tx.LockSupportRequest(ctx, requestID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrRequestNotFound
		}
		if err != nil {
			return err
		}
		if !req.IsActive() {
			return domain.ErrRequestNotFound
		}

		now := s.now()
		donation := &domain.Donation{
			DonorID:   donorID,
			DonorName: donor.Name,
			RequestID: requestID,
			Hours:     hours,
			Message:   message,
			CreatedOn: now,
		}
		if err := tx.InsertDonation(ctx, donation); err != nil {
			return err
		}

		remaining, err := tx.DebitUserHours(ctx, donorID, hours)
		if err != nil {
			return err
		}

		updated, err := tx.CreditRequestHours(ctx, requestID, hours)
		if err != nil {
			return err
		}
		if updated.HoursReceived >= updated.HoursNeeded {
			if err := tx.MarkRequestFulfilled(ctx, requestID, now); err != nil {
				return err
			}
			updated.Status = domain.SupportRequestStatusFulfilled
			updated.FulfilledOn = &now
		}

		receipt = &domain.DonationReceipt{
			Donation:            *donation,
			Request:             *updated,
			DonorRemainingHours: remaining,
		}
		return nil
	})
	if err != nil {
		err = classifyLedgerError(err)
		if errors.Is(err, domain.ErrStoreFailure) {
			logger.ExitMethodWithError(method, err, "donorID", donorID, "requestID", requestID)
		} else {
			logger.Debug("Donation rejected", "donorID", donorID, "requestID", requestID, "hours", hours, "reason", err)
		}
		return nil, err
	}

	logger.Ledger("donation_recorded",
		"donation_id", receipt.Donation.ID,
		"donor_id", donorID,
		"request_id", requestID,
		"hours", hours,
		"request_status", receipt.Request.Status,
	)
	logger.ExitMethod(method, "donationID", receipt.Donation.ID)
	return receipt, nil
}

// classifyLedgerError keeps the two business rejections and folds every other
// failure into domain.ErrStoreFailure.
func classifyLedgerError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrStoreFailure):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
}
