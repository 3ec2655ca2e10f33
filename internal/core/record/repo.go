package record

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"mutabaah.dev/backend/internal/util"
)

var _ Store = (*Repo)(nil)

type Repo struct {
	DB *bun.DB
}

func NewRepo(db *bun.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) QueryRange(ctx context.Context, userID int64, start, end time.Time) ([]*Model, error) {
	var records []*Model
	err := r.DB.NewSelect().
		Model(&records).
		Where("ar.user_id = ?", userID).
		Where("ar.date BETWEEN ?::date AND ?::date", util.FormatDate(start), util.FormatDate(end)).
		Order("ar.date ASC", "ar.activity_name ASC").
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(err, "record: query range of user %d", userID)
	}
	return records, nil
}

func (r *Repo) Upsert(ctx context.Context, m *Model) error {
	return writer{r.DB}.Upsert(ctx, m)
}

func (r *Repo) DeleteRange(ctx context.Context, userID int64, start, end time.Time) (int64, error) {
	return writer{r.DB}.DeleteRange(ctx, userID, start, end)
}

func (r *Repo) BulkInsert(ctx context.Context, records []*Model) error {
	return writer{r.DB}.BulkInsert(ctx, records)
}

func (r *Repo) WithinTx(ctx context.Context, fn func(ctx context.Context, w Writer) error) error {
	return r.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, writer{tx})
	})
}

// CountOnDate counts records of every user on date.
func (r *Repo) CountOnDate(ctx context.Context, date time.Time) (int, error) {
	n, err := r.DB.NewSelect().
		Model((*Model)(nil)).
		Where("ar.date = ?::date", util.FormatDate(date)).
		Count(ctx)
	return n, errors.Wrap(err, "record: count on date")
}

// CreateSchema creates the records table and its indexes when missing.
func (r *Repo) CreateSchema(ctx context.Context) error {
	_, err := r.DB.NewCreateTable().
		Model((*Model)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "record: create table")
	}

	_, err = r.DB.NewCreateIndex().
		Model((*Model)(nil)).
		Index("activity_records_user_name_date_key").
		Unique().
		IfNotExists().
		Column("user_id", "activity_name", "date").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "record: create unique index")
	}

	_, err = r.DB.NewCreateIndex().
		Model((*Model)(nil)).
		Index("activity_records_user_date_idx").
		IfNotExists().
		Column("user_id", "date").
		Exec(ctx)
	return errors.Wrap(err, "record: create user date index")
}

// writer runs statements on either the database or a transaction.
type writer struct {
	db bun.IDB
}

func (w writer) Upsert(ctx context.Context, m *Model) error {
	now := time.Now()
	m.Date = util.Date(m.Date)
	m.CreatedAt = now
	m.UpdatedAt = now
	_, err := w.db.NewInsert().
		Model(m).
		On("CONFLICT (user_id, activity_name, date) DO UPDATE").
		Set("completed = EXCLUDED.completed").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	return errors.Wrapf(err, "record: upsert %q of user %d on %s", m.ActivityName, m.UserID, util.FormatDate(m.Date))
}

func (w writer) DeleteRange(ctx context.Context, userID int64, start, end time.Time) (int64, error) {
	res, err := w.db.NewDelete().
		Model((*Model)(nil)).
		Where("user_id = ?", userID).
		Where("date BETWEEN ?::date AND ?::date", util.FormatDate(start), util.FormatDate(end)).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "record: delete range of user %d", userID)
	}
	n, err := res.RowsAffected()
	return n, errors.Wrap(err, "record: delete range rows affected")
}

func (w writer) BulkInsert(ctx context.Context, records []*Model) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now()
	for _, m := range records {
		m.Date = util.Date(m.Date)
		m.CreatedAt = now
		m.UpdatedAt = now
	}
	_, err := w.db.NewInsert().
		Model(&records).
		Exec(ctx)
	return errors.Wrapf(err, "record: bulk insert %d records", len(records))
}
