package service

import (
	"context"

	"ptoshare-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name string, companyID *int32) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, *domain.Company, error)
	UpdateProfile(ctx context.Context, userID int32, patch domain.UserPatch) (*domain.User, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetAvailableHours(ctx context.Context, adminID, userID, hours int32) (*domain.User, error)
	RemoveUser(ctx context.Context, adminID, userID int32) error
}

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	GetCompany(ctx context.Context, id int32) (*domain.Company, error)
	CreateCompany(ctx context.Context, name string, allowCrossCompany bool) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id int32, patch domain.CompanyPatch) (*domain.Company, error)
	ListMembers(ctx context.Context, id int32) ([]domain.User, error)
}

type SupportRequestService interface {
	CreateRequest(ctx context.Context, ownerID, hoursNeeded int32, urgency, reason string) (*domain.SupportRequest, error)
	GetRequest(ctx context.Context, id int32) (*domain.SupportRequest, error)
	ListActive(ctx context.Context) ([]domain.SupportRequest, error)
	ListMine(ctx context.Context, ownerID int32) ([]domain.SupportRequest, error)
	ListDonations(ctx context.Context, requestID int32) ([]domain.Donation, error)
}

// LedgerService is the balance ledger core. RecordDonation returns one of domain.ErrValidation,
// domain.ErrInsufficientBalance, domain.ErrRequestNotFound or domain.ErrStoreFailure on failure,
// in which case nothing was written.
type LedgerService interface {
	RecordDonation(ctx context.Context, donorID, requestID, hours int32, message string) (*domain.DonationReceipt, error)
}

type DonationService interface {
	Donate(ctx context.Context, donorID, requestID, hours int32, message string) (*domain.DonationReceipt, error)
	ListMine(ctx context.Context, donorID int32) ([]domain.Donation, error)
}

type StatsService interface {
	GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)
	ListCompanyStats(ctx context.Context) ([]domain.CompanyStats, error)
	ListTopDonors(ctx context.Context, limit int32) ([]domain.DonorRank, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendPasswordReset(ctx context.Context, email, name, resetURL string) error
	SendDonationReceived(ctx context.Context, email, name, donorName string, hours int32, fulfilled bool) error
	SendRequestDigest(ctx context.Context, email, name string, requests []domain.SupportRequest) error
}

// PushService delivers mobile push notifications addressed to a user.
type PushService interface {
	NotifyUser(ctx context.Context, userID int32, title, body string, data map[string]string) error
}
