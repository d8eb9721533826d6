package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
)

// ledgerIsolation is stated explicitly rather than inherited from the server default.
// Row locks taken with FOR UPDATE serialize donations touching the same donor or request.
const ledgerIsolation = sql.LevelReadCommitted

type ledgerStore struct {
	db *sql.DB
}

func NewLedgerStore(db *sql.DB) repository.LedgerStore {
	return &ledgerStore{db: db}
}

// RunInTx commits when fn returns nil and rolls back on error or panic.
func (s *ledgerStore) RunInTx(ctx context.Context, fn func(tx repository.LedgerTx) error) (err error) {
	logger.DatabaseCall("BEGIN", "ledger", "isolation", ledgerIsolation.String())
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: ledgerIsolation})
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", domain.ErrStoreFailure, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Error("Ledger rollback failed", "error", rbErr, "cause", err)
			}
		}
	}()

	if err = fn(&ledgerTx{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", domain.ErrStoreFailure, err)
	}
	logger.DatabaseResult("COMMIT", 0, nil, "scope", "ledger")
	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) LockUser(ctx context.Context, userID int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	u, err := scanUser(t.tx.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (t *ledgerTx) LockSupportRequest(ctx context.Context, requestID int32) (*domain.SupportRequest, error) {
	query := `SELECT ` + supportRequestColumns + ` FROM support_requests WHERE id = $1 FOR UPDATE`
	sr, err := scanSupportRequest(t.tx.QueryRowContext(ctx, query, requestID), false)
	if err != nil {
		return nil, mapError(err)
	}
	return sr, nil
}

func (t *ledgerTx) InsertDonation(ctx context.Context, d *domain.Donation) error {
	query := `INSERT INTO donations (donor_id, request_id, hours, message, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if d.CreatedOn.IsZero() {
		d.CreatedOn = time.Now().UTC()
	}
	logger.DatabaseCall("INSERT", "donations", "donorID", d.DonorID, "requestID", d.RequestID, "hours", d.Hours)
	err := t.tx.QueryRowContext(ctx, query, d.DonorID, d.RequestID, d.Hours, d.Message, d.CreatedOn).Scan(&d.ID)
	logger.DatabaseResult("INSERT", 1, err, "donationID", d.ID)
	return mapError(err)
}

// DebitUserHours never lets the balance go negative; a guarded miss reports ErrInsufficientBalance.
func (t *ledgerTx) DebitUserHours(ctx context.Context, userID, hours int32) (int32, error) {
	query := `UPDATE users SET available_pto_hours = available_pto_hours - $1, updated_on = $2
	          WHERE id = $3 AND available_pto_hours >= $1
	          RETURNING available_pto_hours`
	var remaining int32
	err := t.tx.QueryRowContext(ctx, query, hours, time.Now().UTC(), userID).Scan(&remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrInsufficientBalance
	}
	return remaining, mapError(err)
}

// CreditRequestHours returns the request as it stands after the increment.
func (t *ledgerTx) CreditRequestHours(ctx context.Context, requestID, hours int32) (*domain.SupportRequest, error) {
	query := `UPDATE support_requests SET hours_received = hours_received + $1
	          WHERE id = $2 AND status = 'active'
	          RETURNING ` + supportRequestColumns
	sr, err := scanSupportRequest(t.tx.QueryRowContext(ctx, query, hours, requestID), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, mapError(err)
	}
	return sr, nil
}

func (t *ledgerTx) MarkRequestFulfilled(ctx context.Context, requestID int32, at time.Time) error {
	query := `UPDATE support_requests SET status = 'fulfilled', fulfilled_on = $1 WHERE id = $2 AND status = 'active'`
	res, err := t.tx.ExecContext(ctx, query, at, requestID)
	if err := requireOneRow(res, err); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}
	return nil
}
