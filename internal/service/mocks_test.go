package service_test

import (
	"context"
	"time"

	"ptoshare-backend/internal/domain"

	"firebase.google.com/go/v4/messaging"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ApplyPatch(ctx context.Context, id int32, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}
func (m *MockUserRepo) SetAvailableHours(ctx context.Context, id int32, hours int32) error {
	args := m.Called(ctx, id, hours)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByCompany(ctx context.Context, companyID int32) ([]domain.User, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListDonors(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) HasLedgerHistory(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCompanyRepo
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id int32) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) List(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) ApplyPatch(ctx context.Context, id int32, patch domain.CompanyPatch) (*domain.Company, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// MockSupportRequestRepo
type MockSupportRequestRepo struct {
	mock.Mock
}

func (m *MockSupportRequestRepo) Create(ctx context.Context, req *domain.SupportRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockSupportRequestRepo) GetByID(ctx context.Context, id int32) (*domain.SupportRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportRequest), args.Error(1)
}
func (m *MockSupportRequestRepo) ListActive(ctx context.Context) ([]domain.SupportRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SupportRequest), args.Error(1)
}
func (m *MockSupportRequestRepo) ListByUser(ctx context.Context, userID int32) ([]domain.SupportRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.SupportRequest), args.Error(1)
}

// MockDonationRepo
type MockDonationRepo struct {
	mock.Mock
}

func (m *MockDonationRepo) ListByRequest(ctx context.Context, requestID int32) ([]domain.Donation, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) ListByDonor(ctx context.Context, donorID int32) ([]domain.Donation, error) {
	args := m.Called(ctx, donorID)
	return args.Get(0).([]domain.Donation), args.Error(1)
}

// MockStatsRepo
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformStats), args.Error(1)
}
func (m *MockStatsRepo) ListCompanyStats(ctx context.Context) ([]domain.CompanyStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CompanyStats), args.Error(1)
}
func (m *MockStatsRepo) ListTopDonors(ctx context.Context, limit int32) ([]domain.DonorRank, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.DonorRank), args.Error(1)
}
func (m *MockStatsRepo) FindLedgerDiscrepancies(ctx context.Context) ([]domain.LedgerDiscrepancy, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LedgerDiscrepancy), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockPasswordResetRepo
type MockPasswordResetRepo struct {
	mock.Mock
}

func (m *MockPasswordResetRepo) Create(ctx context.Context, reset *domain.PasswordReset) error {
	args := m.Called(ctx, reset)
	return args.Error(0)
}
func (m *MockPasswordResetRepo) GetByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordReset), args.Error(1)
}
func (m *MockPasswordResetRepo) MarkUsed(ctx context.Context, token string, at time.Time) error {
	args := m.Called(ctx, token, at)
	return args.Error(0)
}
func (m *MockPasswordResetRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordDonation(ctx context.Context, donorID, requestID, hours int32, message string) (*domain.DonationReceipt, error) {
	args := m.Called(ctx, donorID, requestID, hours, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationReceipt), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPasswordReset(ctx context.Context, email, name, resetURL string) error {
	args := m.Called(ctx, email, name, resetURL)
	return args.Error(0)
}
func (m *MockEmailService) SendDonationReceived(ctx context.Context, email, name, donorName string, hours int32, fulfilled bool) error {
	args := m.Called(ctx, email, name, donorName, hours, fulfilled)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestDigest(ctx context.Context, email, name string, requests []domain.SupportRequest) error {
	args := m.Called(ctx, email, name, requests)
	return args.Error(0)
}

// MockPushService
type MockPushService struct {
	mock.Mock
}

func (m *MockPushService) NotifyUser(ctx context.Context, userID int32, title, body string, data map[string]string) error {
	args := m.Called(ctx, userID, title, body, data)
	return args.Error(0)
}

// MockMailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rest.Response), args.Error(1)
}

// MockMessageSender
type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) Send(ctx context.Context, message *messaging.Message) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}
