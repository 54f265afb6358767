package audit

import "context"

type AuditRepository interface {
	Create(ctx context.Context, log Log) error
	ListByRecord(ctx context.Context, tableName, recordID string) ([]Log, error)
	ListRecent(ctx context.Context, limit int) ([]Log, error)
}

// Recorder is the write-side interface handed to services that must leave a
// change trail.
type Recorder interface {
	Record(ctx context.Context, log Log) error
}
