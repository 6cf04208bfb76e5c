package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/pcbuilder/internal/model"
)

const prebuiltsTable = "prebuilts"

var prebuiltColumns = []string{
	"id", "engineer_id",
	"cpu_id", "gpu_id", "memory_id", "storage_id", "storage_id2",
	"motherboard_id", "power_supply_id", "case_id",
	"total_price", "rating", "created_at", "updated_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPrebuiltRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, p *model.Prebuilt) (int64, error) {
	q := r.sb.
		Insert(prebuiltsTable).
		Columns(
			"engineer_id",
			"cpu_id", "gpu_id", "memory_id", "storage_id", "storage_id2",
			"motherboard_id", "power_supply_id", "case_id",
			"total_price", "rating",
		).
		Values(
			p.EngineerID,
			p.Parts.CPUID, p.Parts.GPUID, p.Parts.MemoryID, p.Parts.StorageID, p.Parts.StorageID2,
			p.Parts.MotherboardID, p.Parts.PowerSupplyID, p.Parts.CaseID,
			p.TotalPrice, p.Rating,
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

// Update replaces every slot of the prebuilt. The prebuilt must belong to p.EngineerID.
func (r *repository) Update(ctx context.Context, p *model.Prebuilt) error {
	if p.ID == 0 {
		return errors.New("empty prebuilt id")
	}

	q := r.sb.
		Update(prebuiltsTable).
		SetMap(sq.Eq{
			"cpu_id":          p.Parts.CPUID,
			"gpu_id":          p.Parts.GPUID,
			"memory_id":       p.Parts.MemoryID,
			"storage_id":      p.Parts.StorageID,
			"storage_id2":     p.Parts.StorageID2,
			"motherboard_id":  p.Parts.MotherboardID,
			"power_supply_id": p.Parts.PowerSupplyID,
			"case_id":         p.Parts.CaseID,
			"total_price":     p.TotalPrice,
			"rating":          p.Rating,
			"updated_at":      sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": p.ID, "engineer_id": p.EngineerID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPrebuiltNotFound
	}

	return nil
}

func (r *repository) ByEngineer(ctx context.Context, engineerID int64) ([]model.Prebuilt, error) {
	return r.list(ctx, sq.Eq{"engineer_id": engineerID})
}

func (r *repository) All(ctx context.Context) ([]model.Prebuilt, error) {
	return r.list(ctx, nil)
}

func (r *repository) list(ctx context.Context, where sq.Sqlizer) ([]model.Prebuilt, error) {
	q := r.sb.
		Select(prebuiltColumns...).
		From(prebuiltsTable).
		OrderBy("id")
	if where != nil {
		q = q.Where(where)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanPrebuilt)
}

func scanPrebuilt(row pgx.CollectableRow) (model.Prebuilt, error) {
	var p model.Prebuilt
	err := row.Scan(
		&p.ID,
		&p.EngineerID,
		&p.Parts.CPUID,
		&p.Parts.GPUID,
		&p.Parts.MemoryID,
		&p.Parts.StorageID,
		&p.Parts.StorageID2,
		&p.Parts.MotherboardID,
		&p.Parts.PowerSupplyID,
		&p.Parts.CaseID,
		&p.TotalPrice,
		&p.Rating,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
