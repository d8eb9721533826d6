package postgres

import (
	"context"
	"database/sql"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/repository"
)

// Donations are written only through the ledger transaction; this repository is read-only.
type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) ListByRequest(ctx context.Context, requestID int32) ([]domain.Donation, error) {
	query := `SELECT d.id, d.donor_id, u.name, d.request_id, d.hours, COALESCE(d.message, ''), d.created_on
	          FROM donations d JOIN users u ON u.id = d.donor_id
	          WHERE d.request_id = $1
	          ORDER BY d.created_on DESC, d.id DESC`
	return r.list(ctx, query, requestID)
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID int32) ([]domain.Donation, error) {
	query := `SELECT d.id, d.donor_id, u.name, d.request_id, d.hours, COALESCE(d.message, ''), d.created_on
	          FROM donations d JOIN users u ON u.id = d.donor_id
	          WHERE d.donor_id = $1
	          ORDER BY d.created_on DESC, d.id DESC`
	return r.list(ctx, query, donorID)
}

func (r *donationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Donation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.DonorID, &d.DonorName, &d.RequestID, &d.Hours, &d.Message, &d.CreatedOn); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
