package roster

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Counter reports user totals.
type Counter interface {
	Counts(ctx context.Context) (*Counts, error)
}

type Repo struct {
	DB *bun.DB
}

func NewRepo(db *bun.DB) *Repo {
	return &Repo{DB: db}
}

// ActiveUserIDs returns up to limit active non-admin users, oldest account first.
func (r *Repo) ActiveUserIDs(ctx context.Context, limit int) ([]int64, error) {
	var ids []int64
	err := r.DB.NewSelect().
		Model((*Model)(nil)).
		Column("u.id").
		Where("u.is_active = TRUE").
		Where("u.is_admin = FALSE").
		Order("u.id ASC").
		Limit(limit).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "roster: list active users")
	}
	return ids, nil
}

func (r *Repo) Counts(ctx context.Context) (*Counts, error) {
	var counts Counts
	err := r.DB.NewSelect().
		Model((*Model)(nil)).
		ColumnExpr("COUNT(*) AS total").
		ColumnExpr("COUNT(*) FILTER (WHERE u.is_active) AS active").
		Scan(ctx, &counts.Total, &counts.Active)
	if err != nil {
		return nil, errors.Wrap(err, "roster: count users")
	}
	return &counts, nil
}
