package postgres

import (
	"context"
	"database/sql"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
)

const supportRequestColumns = `id, user_id, hours_needed, hours_received, status, urgency, COALESCE(reason, ''), created_on, fulfilled_on`

// Display order: high, medium, everything else; oldest first within a band.
const urgencyOrder = `CASE sr.urgency WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, sr.created_on ASC, sr.id ASC`

type supportRequestRepository struct {
	db *sql.DB
}

func NewSupportRequestRepository(db *sql.DB) repository.SupportRequestRepository {
	return &supportRequestRepository{db: db}
}

func scanSupportRequest(row rowScanner, withName bool) (*domain.SupportRequest, error) {
	sr := &domain.SupportRequest{}
	var fulfilledOn sql.NullTime
	dest := []any{&sr.ID, &sr.UserID, &sr.HoursNeeded, &sr.HoursReceived, &sr.Status, &sr.Urgency, &sr.Reason, &sr.CreatedOn, &fulfilledOn}
	if withName {
		dest = append(dest, &sr.RequesterName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if fulfilledOn.Valid {
		t := fulfilledOn.Time
		sr.FulfilledOn = &t
	}
	return sr, nil
}

func (r *supportRequestRepository) Create(ctx context.Context, sr *domain.SupportRequest) error {
	query := `INSERT INTO support_requests (user_id, hours_needed, hours_received, status, urgency, reason, created_on)
	          VALUES ($1, $2, 0, $3, $4, $5, $6) RETURNING id`
	sr.HoursReceived = 0
	sr.Status = domain.SupportRequestStatusActive
	sr.CreatedOn = time.Now().UTC()
	logger.DatabaseCall("INSERT", "support_requests", "userID", sr.UserID, "hoursNeeded", sr.HoursNeeded)
	err := r.db.QueryRowContext(ctx, query, sr.UserID, sr.HoursNeeded, sr.Status, sr.Urgency, sr.Reason, sr.CreatedOn).Scan(&sr.ID)
	logger.DatabaseResult("INSERT", 1, err, "requestID", sr.ID)
	return mapError(err)
}

func (r *supportRequestRepository) GetByID(ctx context.Context, id int32) (*domain.SupportRequest, error) {
	query := `SELECT sr.id, sr.user_id, sr.hours_needed, sr.hours_received, sr.status, sr.urgency, COALESCE(sr.reason, ''), sr.created_on, sr.fulfilled_on, u.name
	          FROM support_requests sr JOIN users u ON u.id = sr.user_id
	          WHERE sr.id = $1`
	sr, err := scanSupportRequest(r.db.QueryRowContext(ctx, query, id), true)
	if err != nil {
		return nil, mapError(err)
	}
	return sr, nil
}

func (r *supportRequestRepository) ListActive(ctx context.Context) ([]domain.SupportRequest, error) {
	query := `SELECT sr.id, sr.user_id, sr.hours_needed, sr.hours_received, sr.status, sr.urgency, COALESCE(sr.reason, ''), sr.created_on, sr.fulfilled_on, u.name
	          FROM support_requests sr JOIN users u ON u.id = sr.user_id
	          WHERE sr.status = 'active'
	          ORDER BY ` + urgencyOrder
	return r.list(ctx, query)
}

func (r *supportRequestRepository) ListByUser(ctx context.Context, userID int32) ([]domain.SupportRequest, error) {
	query := `SELECT sr.id, sr.user_id, sr.hours_needed, sr.hours_received, sr.status, sr.urgency, COALESCE(sr.reason, ''), sr.created_on, sr.fulfilled_on, u.name
	          FROM support_requests sr JOIN users u ON u.id = sr.user_id
	          WHERE sr.user_id = $1
	          ORDER BY sr.created_on DESC, sr.id DESC`
	return r.list(ctx, query, userID)
}

func (r *supportRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.SupportRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.SupportRequest
	for rows.Next() {
		sr, err := scanSupportRequest(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, *sr)
	}
	return out, rows.Err()
}
