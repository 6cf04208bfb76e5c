package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/you-humble/pcbuilder/internal/model"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCatalogRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// List returns the summaries of category ordered by id.
func (r *repository) List(ctx context.Context, category model.Category) ([]model.PartSummary, error) {
	spec, err := specFor(category)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := r.sb.
		Select(spec.summaryColumns()...).
		From(spec.table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := make([]model.PartSummary, 0, 64)
	for rows.Next() {
		p := model.PartSummary{Category: category}
		if err := rows.Scan(spec.summaryDest(&p)...); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}

func (r *repository) PartByID(ctx context.Context, category model.Category, id int64) (*model.Part, error) {
	spec, err := specFor(category)
	if err != nil {
		return nil, err
	}

	cols := append(spec.summaryColumns(),
		"price", "image_url", "product_url", "usage_count", "specs", "modified_at",
	)

	sqlStr, args, err := r.sb.
		Select(cols...).
		From(spec.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	p := model.Part{PartSummary: model.PartSummary{Category: category}}
	dest := append(spec.summaryDest(&p.PartSummary),
		&p.Price, &p.ImageURL, &p.ProductURL, &p.UsageCount, &p.Specs, &p.ModifiedAt,
	)

	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return &p, nil
}

// Prices looks up the unit price of every ref. Unknown ids are absent from the result.
func (r *repository) Prices(ctx context.Context, refs []model.PartRef) (map[model.PartRef]float64, error) {
	out := make(map[model.PartRef]float64, len(refs))
	if len(refs) == 0 {
		return out, nil
	}

	byCategory := lo.GroupBy(refs, func(ref model.PartRef) model.Category { return ref.Category })

	for category, group := range byCategory {
		spec, err := specFor(category)
		if err != nil {
			return nil, err
		}

		ids := lo.Uniq(lo.Map(group, func(ref model.PartRef, _ int) int64 { return ref.ID }))

		sqlStr, args, err := r.sb.
			Select("id", "price").
			From(spec.table).
			Where(sq.Eq{"id": ids}).
			ToSql()
		if err != nil {
			return nil, err
		}

		rows, err := r.pool.Query(ctx, sqlStr, args...)
		if err != nil {
			return nil, err
		}

		for rows.Next() {
			var (
				id    int64
				price float64
			)
			if err := rows.Scan(&id, &price); err != nil {
				rows.Close()
				return nil, err
			}
			out[model.PartRef{Category: category, ID: id}] = price
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Version changes whenever a row of category is inserted, deleted or edited.
// Usage counter increments leave it untouched.
func (r *repository) Version(ctx context.Context, category model.Category) (int64, error) {
	spec, err := specFor(category)
	if err != nil {
		return 0, err
	}

	sqlStr, args, err := r.sb.
		Select("COUNT(*)", "COALESCE(MAX(modified_at), to_timestamp(0))").
		From(spec.table).
		ToSql()
	if err != nil {
		return 0, err
	}

	var (
		count    int64
		modified time.Time
	)
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&count, &modified); err != nil {
		return 0, err
	}

	return modified.UnixNano() + count, nil
}

func (r *repository) IncrementUsage(ctx context.Context, category model.Category, id int64) error {
	spec, err := specFor(category)
	if err != nil {
		return err
	}

	sqlStr, args, err := r.sb.
		Update(spec.table).
		Set("usage_count", sq.Expr("usage_count + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}
