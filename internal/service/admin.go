package service

import (
	"context"
	"fmt"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
)

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

func (s *adminService) requireAdmin(ctx context.Context, adminID int32) error {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to load admin: %w", err)
	}
	if !admin.IsAdmin {
		return fmt.Errorf("%w: admin privileges required", domain.ErrForbidden)
	}
	return nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// SetAvailableHours is the only path that creates PTO hours outside the donation ledger.
func (s *adminService) SetAvailableHours(ctx context.Context, adminID, userID, hours int32) (*domain.User, error) {
	logger.EnterMethod("adminService.SetAvailableHours", "adminID", adminID, "userID", userID, "hours", hours)

	if hours < 0 {
		return nil, fmt.Errorf("%w: hours cannot be negative", domain.ErrValidation)
	}
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetAvailableHours(ctx, userID, hours); err != nil {
		logger.ExitMethodWithError("adminService.SetAvailableHours", err, "userID", userID)
		return nil, err
	}

	logger.Ledger("balance_set", "admin_id", adminID, "user_id", userID, "hours", hours)
	return s.userRepo.GetByID(ctx, userID)
}

func (s *adminService) RemoveUser(ctx context.Context, adminID, userID int32) error {
	if adminID == userID {
		return fmt.Errorf("%w: admins cannot remove themselves", domain.ErrValidation)
	}
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	hasHistory, err := s.userRepo.HasLedgerHistory(ctx, userID)
	if err != nil {
		return err
	}
	if hasHistory {
		return fmt.Errorf("%w: user has donations or support requests", domain.ErrConflict)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Info("User removed", "adminID", adminID, "userID", userID)
	return nil
}
