package repository

import (
	"context"
	"time"

	"ptoshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ApplyPatch(ctx context.Context, id int32, patch domain.UserPatch) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
	SetAvailableHours(ctx context.Context, id int32, hours int32) error
	List(ctx context.Context) ([]domain.User, error)
	ListByCompany(ctx context.Context, companyID int32) ([]domain.User, error)
	ListDonors(ctx context.Context) ([]domain.User, error)
	HasLedgerHistory(ctx context.Context, id int32) (bool, error)
	Delete(ctx context.Context, id int32) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id int32) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	ApplyPatch(ctx context.Context, id int32, patch domain.CompanyPatch) (*domain.Company, error)
}

type SupportRequestRepository interface {
	Create(ctx context.Context, req *domain.SupportRequest) error
	GetByID(ctx context.Context, id int32) (*domain.SupportRequest, error)
	ListActive(ctx context.Context) ([]domain.SupportRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.SupportRequest, error)
}

type DonationRepository interface {
	ListByRequest(ctx context.Context, requestID int32) ([]domain.Donation, error)
	ListByDonor(ctx context.Context, donorID int32) ([]domain.Donation, error)
}

// LedgerStore runs the donation unit of work. fn's effects are committed only if it returns nil.
type LedgerStore interface {
	RunInTx(ctx context.Context, fn func(tx LedgerTx) error) error
}

// LedgerTx is the set of row operations available inside one ledger transaction.
// Lock* methods must hold the row until the transaction ends; they return domain.ErrNotFound
// for missing rows.
type LedgerTx interface {
	LockUser(ctx context.Context, userID int32) (*domain.User, error)
	LockSupportRequest(ctx context.Context, requestID int32) (*domain.SupportRequest, error)
	InsertDonation(ctx context.Context, d *domain.Donation) error
	DebitUserHours(ctx context.Context, userID, hours int32) (int32, error)
	CreditRequestHours(ctx context.Context, requestID, hours int32) (*domain.SupportRequest, error)
	MarkRequestFulfilled(ctx context.Context, requestID int32, at time.Time) error
}

type StatsRepository interface {
	GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)
	ListCompanyStats(ctx context.Context) ([]domain.CompanyStats, error)
	ListTopDonors(ctx context.Context, limit int32) ([]domain.DonorRank, error)
	FindLedgerDiscrepancies(ctx context.Context) ([]domain.LedgerDiscrepancy, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type PasswordResetRepository interface {
	Create(ctx context.Context, reset *domain.PasswordReset) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, token string, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
