package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
)

type supportRequestService struct {
	reqRepo      repository.SupportRequestRepository
	donationRepo repository.DonationRepository
	userRepo     repository.UserRepository
}

func NewSupportRequestService(reqRepo repository.SupportRequestRepository, donationRepo repository.DonationRepository, userRepo repository.UserRepository) SupportRequestService {
	return &supportRequestService{reqRepo: reqRepo, donationRepo: donationRepo, userRepo: userRepo}
}

func (s *supportRequestService) CreateRequest(ctx context.Context, ownerID, hoursNeeded int32, urgency, reason string) (*domain.SupportRequest, error) {
	logger.EnterMethod("supportRequestService.CreateRequest", "ownerID", ownerID, "hoursNeeded", hoursNeeded)

	if hoursNeeded < 1 {
		return nil, fmt.Errorf("%w: hours needed must be a positive integer", domain.ErrValidation)
	}
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	req := &domain.SupportRequest{
		UserID:        ownerID,
		RequesterName: owner.Name,
		HoursNeeded:   hoursNeeded,
		Status:        domain.SupportRequestStatusActive,
		Urgency:       domain.ParseUrgency(urgency),
		Reason:        strings.TrimSpace(reason),
		CreatedOn:     time.Now().UTC(),
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		logger.ExitMethodWithError("supportRequestService.CreateRequest", err, "ownerID", ownerID)
		return nil, err
	}

	logger.ExitMethod("supportRequestService.CreateRequest", "requestID", req.ID)
	return req, nil
}

func (s *supportRequestService) GetRequest(ctx context.Context, id int32) (*domain.SupportRequest, error) {
	return s.reqRepo.GetByID(ctx, id)
}

func (s *supportRequestService) ListActive(ctx context.Context) ([]domain.SupportRequest, error) {
	return s.reqRepo.ListActive(ctx)
}

func (s *supportRequestService) ListMine(ctx context.Context, ownerID int32) ([]domain.SupportRequest, error) {
	return s.reqRepo.ListByUser(ctx, ownerID)
}

func (s *supportRequestService) ListDonations(ctx context.Context, requestID int32) ([]domain.Donation, error) {
	if _, err := s.reqRepo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return s.donationRepo.ListByRequest(ctx, requestID)
}
