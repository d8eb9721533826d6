package service

import (
	"context"
	"fmt"
	"strings"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/repository"
)

type userService struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

func NewUserService(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) UserService {
	return &userService{userRepo: userRepo, companyRepo: companyRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, *domain.Company, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user.CompanyID == nil {
		return user, nil, nil
	}
	company, err := s.companyRepo.GetByID(ctx, *user.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	return user, company, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, patch domain.UserPatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return s.userRepo.GetByID(ctx, userID)
	}
	if patch.ClearCompany && patch.CompanyID != nil {
		return nil, fmt.Errorf("%w: company_id and clear_company are mutually exclusive", domain.ErrValidation)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		patch.Name = &name
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		patch.Email = &email
	}
	return s.userRepo.ApplyPatch(ctx, userID, patch)
}
