package postgres

import (
	"context"
	"database/sql"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM companies),
			(SELECT count(*) FROM donations),
			(SELECT COALESCE(SUM(hours), 0) FROM donations),
			COALESCE(SUM(CASE WHEN sr.status = 'active' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN sr.status = 'fulfilled' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN sr.status = 'active' THEN GREATEST(sr.hours_needed - sr.hours_received, 0) ELSE 0 END), 0),
			(SELECT count(*) FROM users WHERE need_support),
			(SELECT count(*) FROM users WHERE can_donate)
		FROM support_requests sr`
	s := &domain.PlatformStats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.TotalUsers, &s.TotalCompanies, &s.TotalDonations, &s.TotalHoursDonated,
		&s.ActiveRequests, &s.FulfilledRequests, &s.HoursStillNeeded,
		&s.UsersNeedingHelp, &s.UsersWillingToGive,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *statsRepository) ListCompanyStats(ctx context.Context) ([]domain.CompanyStats, error) {
	query := `
		SELECT c.id, c.name,
			(SELECT count(*) FROM users u WHERE u.company_id = c.id),
			(SELECT COALESCE(SUM(d.hours), 0) FROM donations d JOIN users u ON u.id = d.donor_id WHERE u.company_id = c.id),
			COALESCE(SUM(sr.hours_received), 0),
			COALESCE(SUM(CASE WHEN sr.status = 'active' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN sr.status = 'fulfilled' THEN 1 ELSE 0 END), 0)
		FROM companies c
		LEFT JOIN users ru ON ru.company_id = c.id
		LEFT JOIN support_requests sr ON sr.user_id = ru.id
		GROUP BY c.id, c.name
		ORDER BY 4 DESC, c.name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.CompanyStats
	for rows.Next() {
		var s domain.CompanyStats
		if err := rows.Scan(&s.CompanyID, &s.CompanyName, &s.MemberCount, &s.HoursDonated,
			&s.HoursReceived, &s.ActiveRequests, &s.FulfilledRequests); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *statsRepository) ListTopDonors(ctx context.Context, limit int32) ([]domain.DonorRank, error) {
	query := `
		SELECT u.id, u.name, count(d.id), COALESCE(SUM(d.hours), 0)
		FROM donations d JOIN users u ON u.id = d.donor_id
		GROUP BY u.id, u.name
		ORDER BY 4 DESC, 3 DESC, u.id ASC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.DonorRank
	for rows.Next() {
		var d domain.DonorRank
		if err := rows.Scan(&d.UserID, &d.Name, &d.DonationCount, &d.HoursDonated); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// FindLedgerDiscrepancies lists requests whose hours_received differs from the sum of their
// donations, and requests whose status does not match hours_received >= hours_needed.
func (r *statsRepository) FindLedgerDiscrepancies(ctx context.Context) ([]domain.LedgerDiscrepancy, error) {
	query := `
		SELECT sr.id, sr.hours_needed, sr.hours_received, COALESCE(SUM(d.hours), 0), sr.status
		FROM support_requests sr
		LEFT JOIN donations d ON d.request_id = sr.id
		GROUP BY sr.id, sr.hours_needed, sr.hours_received, sr.status
		HAVING sr.hours_received <> COALESCE(SUM(d.hours), 0)
			OR (sr.status = 'fulfilled') <> (sr.hours_received >= sr.hours_needed)
		ORDER BY sr.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.LedgerDiscrepancy
	for rows.Next() {
		var d domain.LedgerDiscrepancy
		if err := rows.Scan(&d.RequestID, &d.HoursNeeded, &d.HoursReceived, &d.DonationSum, &d.Status); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
