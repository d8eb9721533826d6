package service_test

import (
	"context"
	"testing"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDonationService_Donate(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: 2, Email: "owner@example.com", Name: "Owner"}

	receipt := func(status domain.SupportRequestStatus) *domain.DonationReceipt {
		return &domain.DonationReceipt{
			Donation:            domain.Donation{ID: 11, DonorID: 1, DonorName: "Donor", RequestID: 10, Hours: 8},
			Request:             domain.SupportRequest{ID: 10, UserID: 2, HoursNeeded: 8, HoursReceived: 8, Status: status},
			DonorRemainingHours: 12,
		}
	}

	t.Run("NotifiesOwnerAfterCommit", func(t *testing.T) {
		ledger := new(MockLedgerService)
		userRepo := new(MockUserRepo)
		noteRepo := new(MockNotificationRepo)
		emailSvc := new(MockEmailService)
		pushSvc := new(MockPushService)
		svc := service.NewDonationService(ledger, new(MockDonationRepo), userRepo, noteRepo, emailSvc, pushSvc)

		ledger.On("RecordDonation", ctx, int32(1), int32(10), int32(8), "hang in there").Return(receipt(domain.SupportRequestStatusFulfilled), nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(owner, nil)
		noteRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == 2 && n.Attributes["request_id"] == "10" && n.Attributes["status"] == string(domain.SupportRequestStatusFulfilled)
		})).Return(nil)
		pushSvc.On("NotifyUser", ctx, int32(2), "Your support request is fully funded", mock.Anything, mock.Anything).Return(nil)
		emailSvc.On("SendDonationReceived", ctx, "owner@example.com", "Owner", "Donor", int32(8), true).Return(nil)

		got, err := svc.Donate(ctx, 1, 10, 8, "hang in there")
		require.NoError(t, err)
		assert.True(t, got.Fulfilled())
		noteRepo.AssertExpectations(t)
		pushSvc.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("NotificationFailuresDoNotFailDonation", func(t *testing.T) {
		ledger := new(MockLedgerService)
		userRepo := new(MockUserRepo)
		noteRepo := new(MockNotificationRepo)
		emailSvc := new(MockEmailService)
		pushSvc := new(MockPushService)
		svc := service.NewDonationService(ledger, new(MockDonationRepo), userRepo, noteRepo, emailSvc, pushSvc)

		ledger.On("RecordDonation", ctx, int32(1), int32(10), int32(8), "").Return(receipt(domain.SupportRequestStatusActive), nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(owner, nil)
		noteRepo.On("Create", ctx, mock.Anything).Return(assert.AnError)
		pushSvc.On("NotifyUser", ctx, int32(2), mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
		emailSvc.On("SendDonationReceived", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, false).Return(assert.AnError)

		got, err := svc.Donate(ctx, 1, 10, 8, "")
		require.NoError(t, err)
		assert.Equal(t, int32(11), got.Donation.ID)
	})

	t.Run("RejectedDonationSendsNothing", func(t *testing.T) {
		ledger := new(MockLedgerService)
		userRepo := new(MockUserRepo)
		svc := service.NewDonationService(ledger, new(MockDonationRepo), userRepo, new(MockNotificationRepo), new(MockEmailService), new(MockPushService))

		ledger.On("RecordDonation", ctx, int32(1), int32(10), int32(80), "").Return(nil, domain.ErrInsufficientBalance)

		_, err := svc.Donate(ctx, 1, 10, 80, "")
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestDonationService_ListMine(t *testing.T) {
	ctx := context.Background()
	donationRepo := new(MockDonationRepo)
	svc := service.NewDonationService(new(MockLedgerService), donationRepo, new(MockUserRepo), new(MockNotificationRepo), new(MockEmailService), new(MockPushService))

	donations := []domain.Donation{{ID: 1, DonorID: 3, Hours: 4}}
	donationRepo.On("ListByDonor", ctx, int32(3)).Return(donations, nil)

	got, err := svc.ListMine(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, donations, got)
}
