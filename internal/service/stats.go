package service

import (
	"context"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/repository"
)

const maxTopDonors = 100

type statsService struct {
	statsRepo    repository.StatsRepository
	defaultLimit int32
}

func NewStatsService(statsRepo repository.StatsRepository, defaultLimit int32) StatsService {
	return &statsService{statsRepo: statsRepo, defaultLimit: defaultLimit}
}

func (s *statsService) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	return s.statsRepo.GetPlatformStats(ctx)
}

func (s *statsService) ListCompanyStats(ctx context.Context) ([]domain.CompanyStats, error) {
	return s.statsRepo.ListCompanyStats(ctx)
}

func (s *statsService) ListTopDonors(ctx context.Context, limit int32) ([]domain.DonorRank, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxTopDonors {
		limit = maxTopDonors
	}
	return s.statsRepo.ListTopDonors(ctx, limit)
}
