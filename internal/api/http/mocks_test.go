package http_test

import (
	"context"

	"ptoshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name string, companyID *int32) (*domain.User, string, string, error) {
	args := m.Called(ctx, email, password, name, companyID)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

// MockCompanyService
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) GetCompany(ctx context.Context, id int32) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) CreateCompany(ctx context.Context, name string, allowCrossCompany bool) (*domain.Company, error) {
	args := m.Called(ctx, name, allowCrossCompany)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) UpdateCompany(ctx context.Context, id int32, patch domain.CompanyPatch) (*domain.Company, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListMembers(ctx context.Context, id int32) ([]domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockSupportRequestService
type MockSupportRequestService struct {
	mock.Mock
}

func (m *MockSupportRequestService) CreateRequest(ctx context.Context, ownerID, hoursNeeded int32, urgency, reason string) (*domain.SupportRequest, error) {
	args := m.Called(ctx, ownerID, hoursNeeded, urgency, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportRequest), args.Error(1)
}
func (m *MockSupportRequestService) GetRequest(ctx context.Context, id int32) (*domain.SupportRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportRequest), args.Error(1)
}
func (m *MockSupportRequestService) ListActive(ctx context.Context) ([]domain.SupportRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SupportRequest), args.Error(1)
}
func (m *MockSupportRequestService) ListMine(ctx context.Context, ownerID int32) ([]domain.SupportRequest, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.SupportRequest), args.Error(1)
}
func (m *MockSupportRequestService) ListDonations(ctx context.Context, requestID int32) ([]domain.Donation, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.Donation), args.Error(1)
}

// MockDonationService
type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) Donate(ctx context.Context, donorID, requestID, hours int32, message string) (*domain.DonationReceipt, error) {
	args := m.Called(ctx, donorID, requestID, hours, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationReceipt), args.Error(1)
}
func (m *MockDonationService) ListMine(ctx context.Context, donorID int32) ([]domain.Donation, error) {
	args := m.Called(ctx, donorID)
	return args.Get(0).([]domain.Donation), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockAdminService) SetAvailableHours(ctx context.Context, adminID, userID, hours int32) (*domain.User, error) {
	args := m.Called(ctx, adminID, userID, hours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAdminService) RemoveUser(ctx context.Context, adminID, userID int32) error {
	args := m.Called(ctx, adminID, userID)
	return args.Error(0)
}
