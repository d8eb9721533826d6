package postgres

import (
	"context"
	"testing"

	"ptoshare-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_GetPlatformStats(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`FROM support_requests sr`).
		WillReturnRows(sqlmock.NewRows([]string{"users", "companies", "donations", "hours", "active", "fulfilled", "needed", "need_support", "can_donate"}).
			AddRow(12, 3, 20, 310, 4, 6, 72, 5, 9))

	s, err := repo.GetPlatformStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(12), s.TotalUsers)
	assert.Equal(t, int64(310), s.TotalHoursDonated)
	assert.Equal(t, int32(4), s.ActiveRequests)
	assert.Equal(t, int64(72), s.HoursStillNeeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_ListTopDonors(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`GROUP BY u.id, u.name`).
		WithArgs(int32(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "count", "hours"}).
			AddRow(1, "Ana", 3, 60).
			AddRow(2, "Bo", 5, 40))

	ranks, err := repo.ListTopDonors(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, ranks, 2)
	assert.Equal(t, "Ana", ranks[0].Name)
	assert.Equal(t, int64(60), ranks[0].HoursDonated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_FindLedgerDiscrepancies(t *testing.T) {
	db, mock := newMock(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`HAVING sr.hours_received <> COALESCE\(SUM\(d.hours\), 0\)\s+OR \(sr.status = 'fulfilled'\) <> \(sr.hours_received >= sr.hours_needed\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hours_needed", "hours_received", "sum", "status"}).
			AddRow(8, 40, 30, 25, "active").
			AddRow(9, 40, 40, 40, "active"))

	found, err := repo.FindLedgerDiscrepancies(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 2)

	assert.Equal(t, int32(8), found[0].RequestID)
	assert.Equal(t, int64(25), found[0].DonationSum)
	assert.True(t, found[0].HoursDrift())
	assert.False(t, found[0].StatusMismatch())

	assert.Equal(t, int32(9), found[1].RequestID)
	assert.Equal(t, domain.SupportRequestStatusActive, found[1].Status)
	assert.False(t, found[1].HoursDrift())
	assert.True(t, found[1].StatusMismatch())
	assert.NoError(t, mock.ExpectationsWereMet())
}
