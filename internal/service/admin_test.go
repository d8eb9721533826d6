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

func TestAdminService_SetAvailableHours(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 1, IsAdmin: true}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		userRepo.On("SetAvailableHours", ctx, int32(5), int32(80)).Return(nil)
		userRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5, AvailablePTOHours: 80}, nil)

		user, err := svc.SetAvailableHours(ctx, 1, 5, 80)
		require.NoError(t, err)
		assert.Equal(t, int32(80), user.AvailablePTOHours)
	})

	t.Run("NegativeHours", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)

		_, err := svc.SetAvailableHours(ctx, 1, 5, -1)
		assert.ErrorIs(t, err, domain.ErrValidation)
		userRepo.AssertNotCalled(t, "SetAvailableHours", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotAdmin", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2}, nil)

		_, err := svc.SetAvailableHours(ctx, 2, 5, 8)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestAdminService_RemoveUser(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 1, IsAdmin: true}

	t.Run("RefusesUsersWithLedgerHistory", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		userRepo.On("HasLedgerHistory", ctx, int32(5)).Return(true, nil)

		err := svc.RemoveUser(ctx, 1, 5)
		assert.ErrorIs(t, err, domain.ErrConflict)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAdminService(userRepo)
		userRepo.On("GetByID", ctx, int32(1)).Return(admin, nil)
		userRepo.On("HasLedgerHistory", ctx, int32(5)).Return(false, nil)
		userRepo.On("Delete", ctx, int32(5)).Return(nil)

		assert.NoError(t, svc.RemoveUser(ctx, 1, 5))
		userRepo.AssertExpectations(t)
	})

	t.Run("Self", func(t *testing.T) {
		svc := service.NewAdminService(new(MockUserRepo))
		assert.ErrorIs(t, svc.RemoveUser(ctx, 1, 1), domain.ErrValidation)
	})
}
