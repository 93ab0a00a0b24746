package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

const attendanceDDL = `
	CREATE TABLE IF NOT EXISTS attendance (
		id              TEXT PRIMARY KEY,
		employee_id     TEXT NOT NULL,
		emp_name        TEXT NOT NULL,
		team            TEXT NOT NULL,
		date            DATE NOT NULL,
		check_in        TIMESTAMPTZ,
		check_out       TIMESTAMPTZ,
		total_minutes   INTEGER,
		status          TEXT NOT NULL,
		is_lop          BOOLEAN NOT NULL DEFAULT FALSE,
		lop_reason      TEXT,
		shift_type      TEXT,
		expected_login  TEXT,
		expected_logout TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, date)
	)
`

// newTestDatabase connects to the database named by TEST_DATABASE_URL and
// makes sure the tables these tests touch exist. Tests are skipped when the
// variable is unset so the suite stays runnable without a database.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
		if testDBErr != nil {
			return
		}
		_, testDBErr = testDB.Exec(context.Background(), attendanceDDL)
	})
	require.NoError(t, testDBErr, "failed to set up test database")

	truncateTables(t, testDB)
	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "TRUNCATE TABLE attendance CASCADE")
	require.NoError(t, err)

	require.NoError(t, tx.Commit(ctx))
}
