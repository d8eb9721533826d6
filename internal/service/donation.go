package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
)

type donationService struct {
	ledger       LedgerService
	donationRepo repository.DonationRepository
	userRepo     repository.UserRepository
	noteRepo     repository.NotificationRepository
	email        EmailService
	push         PushService
}

func NewDonationService(
	ledger LedgerService,
	donationRepo repository.DonationRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	email EmailService,
	push PushService,
) DonationService {
	return &donationService{
		ledger:       ledger,
		donationRepo: donationRepo,
		userRepo:     userRepo,
		noteRepo:     noteRepo,
		email:        email,
		push:         push,
	}
}

// Donate records the donation and then tells the request owner about it.
// Notification failures are logged and never change the returned receipt.
func (s *donationService) Donate(ctx context.Context, donorID, requestID, hours int32, message string) (*domain.DonationReceipt, error) {
	receipt, err := s.ledger.RecordDonation(ctx, donorID, requestID, hours, message)
	if err != nil {
		return nil, err
	}
	s.notifyRecipient(ctx, receipt)
	return receipt, nil
}

func (s *donationService) ListMine(ctx context.Context, donorID int32) ([]domain.Donation, error) {
	return s.donationRepo.ListByDonor(ctx, donorID)
}

func (s *donationService) notifyRecipient(ctx context.Context, receipt *domain.DonationReceipt) {
	owner, err := s.userRepo.GetByID(ctx, receipt.Request.UserID)
	if err != nil {
		logger.Warn("Skipping donation notifications, owner lookup failed",
			"requestID", receipt.Request.ID, "error", err)
		return
	}

	donorName := receipt.Donation.DonorName
	title := "You received a PTO donation"
	body := fmt.Sprintf("%s donated %d hours to your support request.", donorName, receipt.Donation.Hours)
	if receipt.Fulfilled() {
		title = "Your support request is fully funded"
		body = fmt.Sprintf("%s donated %d hours and your request for %d hours is now fulfilled.",
			donorName, receipt.Donation.Hours, receipt.Request.HoursNeeded)
	}

	attrs := map[string]string{
		"type":        "donation_received",
		"donation_id": strconv.Itoa(int(receipt.Donation.ID)),
		"request_id":  strconv.Itoa(int(receipt.Request.ID)),
		"status":      string(receipt.Request.Status),
	}

	note := &domain.Notification{
		UserID:     owner.ID,
		Title:      title,
		Message:    body,
		Attributes: attrs,
		CreatedOn:  time.Now().UTC(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to store donation notification", "userID", owner.ID, "error", err)
	}

	if err := s.push.NotifyUser(ctx, owner.ID, title, body, attrs); err != nil {
		logger.Warn("Failed to push donation notification", "userID", owner.ID, "error", err)
	}

	if err := s.email.SendDonationReceived(ctx, owner.Email, owner.Name, donorName, receipt.Donation.Hours, receipt.Fulfilled()); err != nil {
		logger.Warn("Failed to email donation notification", "userID", owner.ID, "error", err)
	}
}
