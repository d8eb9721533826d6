package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/repository"

	"github.com/lib/pq"
)

// Postgres error codes that carry domain meaning.
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

type Store struct {
	repository.UserRepository
	repository.CompanyRepository
	repository.SupportRequestRepository
	repository.DonationRepository
	repository.LedgerStore
	repository.StatsRepository
	repository.NotificationRepository
	repository.PasswordResetRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		UserRepository:           NewUserRepository(db),
		CompanyRepository:        NewCompanyRepository(db),
		SupportRequestRepository: NewSupportRequestRepository(db),
		DonationRepository:       NewDonationRepository(db),
		LedgerStore:              NewLedgerStore(db),
		StatsRepository:          NewStatsRepository(db),
		NotificationRepository:   NewNotificationRepository(db),
		PasswordResetRepository:  NewPasswordResetRepository(db),
	}
}

// mapError translates driver errors into domain errors, keeping the original in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s: %w", domain.ErrConflict, pqErr.Constraint, err)
		case pqForeignKeyViolation, pqCheckViolation:
			return fmt.Errorf("%w: %s: %w", domain.ErrValidation, pqErr.Constraint, err)
		}
	}
	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Open connects to PostgreSQL through lib/pq and verifies the connection.
func Open(ctx context.Context, dsn string, maxOpen, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
