package psql

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/digital-product-store/product/internal/dbauth"
)

// newTestDB connects to the database named by TEST_DATABASE_URL and
// resets the uploads/books relations. Tests are skipped when the
// variable is unset.
func newTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres repository tests")
	}

	ctx := context.Background()
	pool, err := dbauth.NewPool(ctx, connString, nil)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx), "failed to ping test database")

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS uploads (
			id UUID PRIMARY KEY,
			object_id UUID NOT NULL,
			original_name VARCHAR(64) NOT NULL
		)
	`)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS books (
			id UUID PRIMARY KEY,
			upload_id UUID NOT NULL REFERENCES uploads (id),
			book_name VARCHAR(64) NOT NULL,
			author VARCHAR(64) NOT NULL,
			summary VARCHAR(64) NOT NULL,
			price NUMERIC NOT NULL
		)
	`)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, "DELETE FROM books")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, "DELETE FROM uploads")
	require.NoError(t, err)

	return pool
}
