package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/pcbuilder/internal/model"
)

const buildsTable = "builds"

var buildColumns = []string{
	"id", "user_id",
	"cpu_id", "gpu_id", "memory_id", "storage_id", "storage_id2",
	"motherboard_id", "power_supply_id", "case_id",
	"total_price", "add_to_profile", "rating", "created_at", "updated_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewBuildRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, b *model.Build) (int64, error) {
	q := r.sb.
		Insert(buildsTable).
		Columns(
			"user_id",
			"cpu_id", "gpu_id", "memory_id", "storage_id", "storage_id2",
			"motherboard_id", "power_supply_id", "case_id",
			"total_price", "add_to_profile", "rating",
		).
		Values(
			b.UserID,
			b.Parts.CPUID, b.Parts.GPUID, b.Parts.MemoryID, b.Parts.StorageID, b.Parts.StorageID2,
			b.Parts.MotherboardID, b.Parts.PowerSupplyID, b.Parts.CaseID,
			b.TotalPrice, b.AddToProfile, b.Rating,
		).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Update replaces every slot of the build. The build must belong to b.UserID.
func (r *repository) Update(ctx context.Context, b *model.Build) error {
	if b.ID == 0 {
		return errors.New("empty build id")
	}

	q := r.sb.
		Update(buildsTable).
		SetMap(sq.Eq{
			"cpu_id":          b.Parts.CPUID,
			"gpu_id":          b.Parts.GPUID,
			"memory_id":       b.Parts.MemoryID,
			"storage_id":      b.Parts.StorageID,
			"storage_id2":     b.Parts.StorageID2,
			"motherboard_id":  b.Parts.MotherboardID,
			"power_supply_id": b.Parts.PowerSupplyID,
			"case_id":         b.Parts.CaseID,
			"total_price":     b.TotalPrice,
			"add_to_profile":  b.AddToProfile,
			"rating":          b.Rating,
			"updated_at":      sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": b.ID, "user_id": b.UserID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrBuildNotFound
	}

	return nil
}

func (r *repository) ByUser(ctx context.Context, userID int64) ([]model.Build, error) {
	sqlStr, args, err := r.sb.
		Select(buildColumns...).
		From(buildsTable).
		Where(sq.Eq{"user_id": userID}).
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

	builds := make([]model.Build, 0)
	for rows.Next() {
		var b model.Build
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Parts.CPUID,
			&b.Parts.GPUID,
			&b.Parts.MemoryID,
			&b.Parts.StorageID,
			&b.Parts.StorageID2,
			&b.Parts.MotherboardID,
			&b.Parts.PowerSupplyID,
			&b.Parts.CaseID,
			&b.TotalPrice,
			&b.AddToProfile,
			&b.Rating,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return builds, nil
}
