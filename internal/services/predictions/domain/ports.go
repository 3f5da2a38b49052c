package domain

import "context"

// WriterPort persists categorized prediction records
type WriterPort interface {
	// WriteBatch persists records and returns the number written
	// (after ON CONFLICT DO NOTHING)
	WriteBatch(ctx context.Context, xs []Record) (int, error)

	// WriteOne convenience wrapper
	WriteOne(ctx context.Context, x Record) error
}

// StorageRepo is the SQL surface the service binds per Queryer
type StorageRepo interface {
	InsertBatch(ctx context.Context, xs []Record) (int, error)
}
