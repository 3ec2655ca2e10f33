package record

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"mutabaah.dev/backend/internal/util"
)

var _ Store = (*MemoryStore)(nil)

// Op names a store operation for fault injection.
type Op string

const (
	OpQuery  Op = "query"
	OpUpsert Op = "upsert"
	OpDelete Op = "delete"
	OpInsert Op = "insert"
)

// ErrDuplicateKey is returned by BulkInsert when a record key already exists.
var ErrDuplicateKey = errors.New("record: duplicate (user_id, activity_name, date)")

// MemoryStore keeps records in memory for local development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	rows    map[key]*Model
	nextID  int64
	queries int

	// Fault, when set, is consulted before every operation; a non-nil error fails it.
	Fault func(op Op, userID int64) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[key]*Model)}
}

// Queries returns the number of QueryRange calls served so far.
func (s *MemoryStore) Queries() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queries
}

func (s *MemoryStore) QueryRange(ctx context.Context, userID int64, start, end time.Time) ([]*Model, error) {
	if err := s.check(ctx, OpQuery, userID); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.queries++
	s.mu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()
	start, end = util.Date(start), util.Date(end)
	var out []*Model
	for _, m := range s.rows {
		if m.UserID == userID && !m.Date.Before(start) && !m.Date.After(end) {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ActivityName < out[j].ActivityName
	})
	return out, nil
}

func (s *MemoryStore) CountOnDate(ctx context.Context, date time.Time) (int, error) {
	if err := s.check(ctx, OpQuery, 0); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	date = util.Date(date)
	n := 0
	for _, m := range s.rows {
		if m.Date.Equal(date) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, m *Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().Upsert(ctx, m)
}

func (s *MemoryStore) DeleteRange(ctx context.Context, userID int64, start, end time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().DeleteRange(ctx, userID, start, end)
}

func (s *MemoryStore) BulkInsert(ctx context.Context, records []*Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.tx()
	if err := w.BulkInsert(ctx, records); err != nil {
		return err
	}
	w.commit()
	return nil
}

// WithinTx stages every write on a copy of the rows and swaps it in when fn succeeds.
// Other callers block until the transaction ends.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, w Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[key]*Model, len(s.rows))
	for k, v := range s.rows {
		c := *v
		staged[k] = &c
	}
	w := &memWriter{store: s, rows: staged, nextID: s.nextID}
	if err := fn(ctx, w); err != nil {
		return err
	}
	s.rows = staged
	s.nextID = w.nextID
	return nil
}

func (s *MemoryStore) check(ctx context.Context, op Op, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Fault != nil {
		if err := s.Fault(op, userID); err != nil {
			return errors.Wrapf(err, "record: %s of user %d", op, userID)
		}
	}
	return nil
}

// tx returns a writer operating directly on the live rows. Callers hold mu.
func (s *MemoryStore) tx() *memWriter {
	return &memWriter{store: s, rows: s.rows, nextID: s.nextID, live: true}
}

type memWriter struct {
	store  *MemoryStore
	rows   map[key]*Model
	nextID int64
	live   bool
}

func (w *memWriter) commit() {
	if w.live {
		w.store.nextID = w.nextID
	}
}

func (w *memWriter) Upsert(ctx context.Context, m *Model) error {
	if err := w.store.check(ctx, OpUpsert, m.UserID); err != nil {
		return err
	}
	now := time.Now()
	m.Date = util.Date(m.Date)
	if existing, ok := w.rows[m.key()]; ok {
		existing.Completed = m.Completed
		existing.Value = m.Value
		existing.UpdatedAt = now
		*m = *existing
		return nil
	}
	w.nextID++
	m.RecordID = w.nextID
	m.CreatedAt = now
	m.UpdatedAt = now
	c := *m
	w.rows[m.key()] = &c
	w.commit()
	return nil
}

func (w *memWriter) DeleteRange(ctx context.Context, userID int64, start, end time.Time) (int64, error) {
	if err := w.store.check(ctx, OpDelete, userID); err != nil {
		return 0, err
	}
	start, end = util.Date(start), util.Date(end)
	var n int64
	for k, m := range w.rows {
		if m.UserID == userID && !m.Date.Before(start) && !m.Date.After(end) {
			delete(w.rows, k)
			n++
		}
	}
	return n, nil
}

func (w *memWriter) BulkInsert(ctx context.Context, records []*Model) error {
	if len(records) == 0 {
		return nil
	}
	if err := w.store.check(ctx, OpInsert, records[0].UserID); err != nil {
		return err
	}
	seen := make(map[key]struct{}, len(records))
	for _, m := range records {
		m.Date = util.Date(m.Date)
		k := m.key()
		if _, ok := w.rows[k]; ok {
			return ErrDuplicateKey
		}
		if _, ok := seen[k]; ok {
			return ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}
	now := time.Now()
	for _, m := range records {
		w.nextID++
		m.RecordID = w.nextID
		m.CreatedAt = now
		m.UpdatedAt = now
		c := *m
		w.rows[m.key()] = &c
	}
	return nil
}
