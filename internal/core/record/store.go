package record

import (
	"context"
	"time"
)

// Reader reads records of one user. Results are ordered by date, then activity name.
type Reader interface {
	QueryRange(ctx context.Context, userID int64, start, end time.Time) ([]*Model, error)
}

// DayCounter counts records of all users on one date.
type DayCounter interface {
	CountOnDate(ctx context.Context, date time.Time) (int, error)
}

// Writer mutates records. Every method is atomic on its own.
type Writer interface {
	// Upsert inserts m or, when its key exists, overwrites Completed, Value and UpdatedAt.
	Upsert(ctx context.Context, m *Model) error
	DeleteRange(ctx context.Context, userID int64, start, end time.Time) (int64, error)
	BulkInsert(ctx context.Context, records []*Model) error
}

// Store is the record store consumed by the stats and generator services.
type Store interface {
	Reader
	Writer

	// WithinTx runs fn with a Writer bound to a single transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, w Writer) error) error
}
