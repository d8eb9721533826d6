package postgres

import (
	"context"
	"database/sql"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
)

const userColumns = `id, email, password_hash, name, company_id, available_pto_hours, can_donate, need_support, is_admin, created_on, updated_on`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var companyID sql.NullInt32
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &companyID, &u.AvailablePTOHours,
		&u.CanDonate, &u.NeedSupport, &u.IsAdmin, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if companyID.Valid {
		id := companyID.Int32
		u.CompanyID = &id
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, name, company_id, available_pto_hours, can_donate, need_support, is_admin, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().UTC()
	u.CreatedOn = now
	u.UpdatedOn = now
	logger.DatabaseCall("INSERT", "users", "email", u.Email)
	err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Name, u.CompanyID, u.AvailablePTOHours,
		u.CanDonate, u.NeedSupport, u.IsAdmin, u.CreatedOn, u.UpdatedOn).Scan(&u.ID)
	logger.DatabaseResult("INSERT", 1, err, "userID", u.ID)
	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

// ApplyPatch writes only the fields present in the patch using a single fixed statement.
func (r *userRepository) ApplyPatch(ctx context.Context, id int32, p domain.UserPatch) (*domain.User, error) {
	query := `UPDATE users SET
	              name = COALESCE($1, name),
	              email = COALESCE($2, email),
	              company_id = CASE WHEN $8 THEN NULL ELSE COALESCE($3, company_id) END,
	              can_donate = COALESCE($4, can_donate),
	              need_support = COALESCE($5, need_support),
	              updated_on = $6
	          WHERE id = $7
	          RETURNING ` + userColumns
	logger.DatabaseCall("UPDATE", "users", "userID", id)
	u, err := scanUser(r.db.QueryRowContext(ctx, query, p.Name, p.Email, p.CompanyID, p.CanDonate, p.NeedSupport, time.Now().UTC(), id, p.ClearCompany))
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "userID", id)
		return nil, mapError(err)
	}
	logger.DatabaseResult("UPDATE", 1, nil, "userID", id)
	return u, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_on = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, passwordHash, time.Now().UTC(), id)
	return requireOneRow(res, err)
}

// SetAvailableHours is the administrative path that grants PTO hours.
func (r *userRepository) SetAvailableHours(ctx context.Context, id int32, hours int32) error {
	query := `UPDATE users SET available_pto_hours = $1, updated_on = $2 WHERE id = $3`
	logger.DatabaseCall("UPDATE", "users.available_pto_hours", "userID", id, "hours", hours)
	res, err := r.db.ExecContext(ctx, query, hours, time.Now().UTC(), id)
	return requireOneRow(res, err)
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY name, id`)
}

func (r *userRepository) ListByCompany(ctx context.Context, companyID int32) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE company_id = $1 ORDER BY name, id`, companyID)
}

func (r *userRepository) ListDonors(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE can_donate AND available_pto_hours > 0 ORDER BY id`)
}

func (r *userRepository) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) HasLedgerHistory(ctx context.Context, id int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM donations WHERE donor_id = $1)
	              OR EXISTS (SELECT 1 FROM support_requests WHERE user_id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, mapError(err)
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	logger.DatabaseCall("DELETE", "users", "userID", id)
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return requireOneRow(res, err)
}

// requireOneRow turns "no rows affected" into domain.ErrNotFound.
func requireOneRow(res sql.Result, err error) error {
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
