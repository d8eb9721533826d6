package postgres

import (
	"context"
	"database/sql"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/repository"
)

type passwordResetRepository struct {
	db *sql.DB
}

func NewPasswordResetRepository(db *sql.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, p *domain.PasswordReset) error {
	query := `INSERT INTO password_resets (token, user_id, expires_on, created_on) VALUES ($1, $2, $3, $4)`
	p.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, p.Token, p.UserID, p.ExpiresOn, p.CreatedOn)
	return mapError(err)
}

func (r *passwordResetRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	query := `SELECT token, user_id, expires_on, used_on, created_on FROM password_resets WHERE token = $1`
	p := &domain.PasswordReset{}
	var usedOn sql.NullTime
	err := r.db.QueryRowContext(ctx, query, token).Scan(&p.Token, &p.UserID, &p.ExpiresOn, &usedOn, &p.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	if usedOn.Valid {
		t := usedOn.Time
		p.UsedOn = &t
	}
	return p, nil
}

// MarkUsed is single-shot: a token already used reports ErrNotFound.
func (r *passwordResetRepository) MarkUsed(ctx context.Context, token string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE password_resets SET used_on = $1 WHERE token = $2 AND used_on IS NULL`, at, token)
	return requireOneRow(res, err)
}

func (r *passwordResetRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM password_resets WHERE expires_on < $1 OR used_on IS NOT NULL`, before)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}
