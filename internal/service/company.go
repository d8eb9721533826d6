package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/repository"
)

type companyService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) CompanyService {
	return &companyService{companyRepo: companyRepo, userRepo: userRepo}
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *companyService) GetCompany(ctx context.Context, id int32) (*domain.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *companyService) CreateCompany(ctx context.Context, name string, allowCrossCompany bool) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", domain.ErrValidation)
	}
	company := &domain.Company{
		Name:              name,
		AllowCrossCompany: allowCrossCompany,
		CreatedOn:         time.Now().UTC(),
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, id int32, patch domain.CompanyPatch) (*domain.Company, error) {
	if patch.IsEmpty() {
		return s.companyRepo.GetByID(ctx, id)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: company name cannot be empty", domain.ErrValidation)
		}
		patch.Name = &name
	}
	return s.companyRepo.ApplyPatch(ctx, id, patch)
}

func (s *companyService) ListMembers(ctx context.Context, id int32) ([]domain.User, error) {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.userRepo.ListByCompany(ctx, id)
}
