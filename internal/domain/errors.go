package domain

import "errors"

var (
	// Ledger outcomes.
	ErrValidation          = errors.New("validation failed")
	ErrInsufficientBalance = errors.New("insufficient PTO balance")
	ErrRequestNotFound     = errors.New("support request not found or no longer active")
	ErrStoreFailure        = errors.New("store failure")

	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
