// Package ch provides a clickhouse client for the analytics sink
package ch

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the clickhouse client
type Config struct {
	URL     string
	Role    string
	AppName string
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// CH wraps a native clickhouse connection
type CH struct {
	conn driver.Conn
}

// Open parses the DSN and dials clickhouse, stamping client info so server
// side query logs identify the process and role
func Open(ctx context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse dsn: %w", err)
	}
	opts.ClientInfo = BuildClientInfo(cfg.Role, cfg.AppName)

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ch: ping: %w", err)
	}
	return &CH{conn: conn}, nil
}

// Insert appends rows to table via a native batch
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if c == nil || c.conn == nil {
		return errors.New("ch: nil client")
	}
	if len(rows) == 0 {
		return nil
	}
	batch, err := c.conn.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := batch.Append(r...); err != nil {
			return err
		}
	}
	return batch.Send()
}

// Query runs a query and returns ch.Rows
func (c *CH) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if c == nil || c.conn == nil {
		return nil, errors.New("ch: nil client")
	}
	return c.conn.Query(ctx, sql, args...)
}

// Ping verifies connectivity
func (c *CH) Ping(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return errors.New("ch: nil client")
	}
	return c.conn.Ping(ctx)
}

// Close closes the connection
func (c *CH) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
