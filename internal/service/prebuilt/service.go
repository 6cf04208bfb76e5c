package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/logger"
)

const maxConcurrentHydrations = 4

type PrebuiltRepository interface {
	Create(ctx context.Context, p *model.Prebuilt) (int64, error)
	Update(ctx context.Context, p *model.Prebuilt) error
	ByEngineer(ctx context.Context, engineerID int64) ([]model.Prebuilt, error)
	All(ctx context.Context) ([]model.Prebuilt, error)
}

type PriceCalculator interface {
	TotalPrice(ctx context.Context, parts model.BuildParts) (float64, error)
}

type PartDetailer interface {
	PartDetails(ctx context.Context, parts model.BuildParts) (*model.ResolvedBuild, error)
}

type service struct {
	repo           PrebuiltRepository
	prices         PriceCalculator
	details        PartDetailer
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPrebuiltService(
	repository PrebuiltRepository,
	prices PriceCalculator,
	details PartDetailer,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		prices:         prices,
		details:        details,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Save publishes or replaces an engineer's prebuilt priced from the catalog.
func (svc *service) Save(ctx context.Context, params model.SavePrebuiltParams) (*model.Prebuilt, error) {
	const op string = "prebuilt.service.Save"
	log := logger.With(logger.Int64("engineer_id", params.EngineerID))

	refs := params.Parts.Refs()
	if params.EngineerID <= 0 || len(refs) == 0 {
		log.Error(ctx, "wrong params", logger.Int("number_parts", len(refs)))
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	total, err := svc.prices.TotalPrice(ctx, params.Parts)
	if err != nil {
		log.Error(ctx, "total price", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p := &model.Prebuilt{
		EngineerID: params.EngineerID,
		Parts:      params.Parts,
		TotalPrice: total,
		Rating:     params.Rating,
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if params.PrebuiltID != nil {
		p.ID = *params.PrebuiltID
		if err := svc.repo.Update(ctx, p); err != nil {
			log.Error(ctx, "repository update prebuilt", logger.Int64("prebuilt_id", p.ID), logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		id, err := svc.repo.Create(ctx, p)
		if err != nil {
			log.Error(ctx, "repository create prebuilt", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.ID = id
	}

	log.Info(ctx, "prebuilt saved",
		logger.Int64("prebuilt_id", p.ID),
		logger.Float64("total_price", total),
	)
	return p, nil
}

func (svc *service) ByEngineer(ctx context.Context, engineerID int64) ([]model.Prebuilt, error) {
	const op string = "prebuilt.service.ByEngineer"

	if engineerID <= 0 {
		logger.Error(ctx, "wrong engineer id", logger.Int64("engineer_id", engineerID))
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	prebuilts, err := svc.list(ctx, func(ctx context.Context) ([]model.Prebuilt, error) {
		return svc.repo.ByEngineer(ctx, engineerID)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return prebuilts, nil
}

func (svc *service) All(ctx context.Context) ([]model.Prebuilt, error) {
	const op string = "prebuilt.service.All"

	prebuilts, err := svc.list(ctx, svc.repo.All)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return prebuilts, nil
}

// list reads prebuilts and expands every filled slot.
func (svc *service) list(
	ctx context.Context,
	read func(ctx context.Context) ([]model.Prebuilt, error),
) ([]model.Prebuilt, error) {
	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	prebuilts, err := read(rdbCtx)
	if err != nil {
		logger.Error(ctx, "repository prebuilts", logger.ErrorF(err))
		return nil, err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentHydrations)
	for i := range prebuilts {
		eg.Go(func() error {
			details, err := svc.details.PartDetails(egCtx, prebuilts[i].Parts)
			if err != nil {
				return fmt.Errorf("prebuilt %d: %w", prebuilts[i].ID, err)
			}
			prebuilts[i].Details = details
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Error(ctx, "hydrate prebuilts", logger.ErrorF(err))
		return nil, err
	}

	return prebuilts, nil
}
