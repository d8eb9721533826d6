package postgres

import (
	"context"
	"testing"

	"ptoshare-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	companyID := int32(2)
	u := &domain.User{Email: "ana@example.com", PasswordHash: "hash", Name: "Ana", CompanyID: &companyID}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(u.Email, u.PasswordHash, u.Name, companyID, int32(0), false, false, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, int32(5), u.ID)
	assert.False(t, u.CreatedOn.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(int32(5)).
			WillReturnRows(userRows().AddRow(5, "ana@example.com", "hash", "Ana", 2, 16, true, false, false, testTime, testTime))

		u, err := repo.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Ana", u.Name)
		require.NotNil(t, u.CompanyID)
		assert.Equal(t, int32(2), *u.CompanyID)
		assert.Equal(t, int32(16), u.AvailablePTOHours)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(int32(6)).
			WillReturnRows(userRows())

		_, err := repo.GetByID(ctx, 6)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ApplyPatch(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	name := "Ana Maria"
	canDonate := true
	patch := domain.UserPatch{Name: &name, CanDonate: &canDonate}

	mock.ExpectQuery(`UPDATE users SET`).
		WithArgs("Ana Maria", nil, nil, true, nil, sqlmock.AnyArg(), int32(5), false).
		WillReturnRows(userRows().AddRow(5, "ana@example.com", "hash", "Ana Maria", nil, 16, true, false, false, testTime, testTime))

	u, err := repo.ApplyPatch(ctx, 5, patch)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", u.Name)
	assert.True(t, u.CanDonate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ApplyPatch_ClearCompany(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`company_id = CASE WHEN \$8 THEN NULL ELSE COALESCE\(\$3, company_id\) END`).
		WithArgs(nil, nil, nil, nil, nil, sqlmock.AnyArg(), int32(5), true).
		WillReturnRows(userRows().AddRow(5, "ana@example.com", "hash", "Ana", nil, 16, true, false, false, testTime, testTime))

	u, err := repo.ApplyPatch(context.Background(), 5, domain.UserPatch{ClearCompany: true})
	require.NoError(t, err)
	assert.Nil(t, u.CompanyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetAvailableHours(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET available_pto_hours = \$1`).
			WithArgs(int32(80), sqlmock.AnyArg(), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.SetAvailableHours(ctx, 5, 80))
	})

	t.Run("MissingUser", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET available_pto_hours = \$1`).
			WithArgs(int32(80), sqlmock.AnyArg(), int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.SetAvailableHours(ctx, 404, 80), domain.ErrNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_HasLedgerHistory(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int32(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	has, err := repo.HasLedgerHistory(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, has)
	assert.NoError(t, mock.ExpectationsWereMet())
}
