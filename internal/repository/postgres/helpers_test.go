package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var testTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "company_id", "available_pto_hours",
		"can_donate", "need_support", "is_admin", "created_on", "updated_on"})
}

func supportRequestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "hours_needed", "hours_received", "status", "urgency", "reason", "created_on", "fulfilled_on"})
}

func supportRequestRowsWithName() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "hours_needed", "hours_received", "status", "urgency", "reason", "created_on", "fulfilled_on", "name"})
}
