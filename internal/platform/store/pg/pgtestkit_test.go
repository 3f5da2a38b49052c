package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WithTestDB opens a client against dsn, applies an optional pool mutator,
// runs fn, and closes on cleanup
func WithTestDB(t *testing.T, dsn string, poolMut func(*pgxpool.Config), fn func(p *PG)) {
	t.Helper()
	client, err := Open(context.Background(), Config{URL: dsn}, nil, poolMut)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { client.Close() })
	fn(client)
}

// AcquireConn pins one connection so TEMP tables and session settings stick
func AcquireConn(t *testing.T, p *PG, ctx context.Context) *pgxpool.Conn {
	t.Helper()
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(func() { conn.Release() })
	return conn
}
