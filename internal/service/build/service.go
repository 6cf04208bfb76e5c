package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/logger"
)

// Caps concurrent PartDetails calls per listing.
const maxConcurrentHydrations = 4

type BuildRepository interface {
	Create(ctx context.Context, b *model.Build) (int64, error)
	Update(ctx context.Context, b *model.Build) error
	ByUser(ctx context.Context, userID int64) ([]model.Build, error)
}

type PriceCalculator interface {
	TotalPrice(ctx context.Context, parts model.BuildParts) (float64, error)
}

type PartDetailer interface {
	PartDetails(ctx context.Context, parts model.BuildParts) (*model.ResolvedBuild, error)
}

type UsageProducer interface {
	SendPartUsage(ctx context.Context, event model.PartUsage) error
}

type service struct {
	repo           BuildRepository
	prices         PriceCalculator
	details        PartDetailer
	usage          UsageProducer
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewBuildService(
	repository BuildRepository,
	prices PriceCalculator,
	details PartDetailer,
	usage UsageProducer,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		prices:         prices,
		details:        details,
		usage:          usage,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Save stores a configuration priced from the catalog and reports its parts as used.
// A failed usage report is logged and never fails the save.
func (svc *service) Save(ctx context.Context, params model.SaveBuildParams) (*model.Build, error) {
	const op string = "build.service.Save"
	log := logger.With(
		logger.Int64("user_id", params.UserID),
		logger.Bool("add_to_profile", params.AddToProfile),
	)

	refs := params.Parts.Refs()
	if params.UserID <= 0 || len(refs) == 0 {
		log.Error(ctx, "wrong params", logger.Int("number_parts", len(refs)))
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	total, err := svc.prices.TotalPrice(ctx, params.Parts)
	if err != nil {
		log.Error(ctx, "total price", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := &model.Build{
		UserID:       params.UserID,
		Parts:        params.Parts,
		TotalPrice:   total,
		AddToProfile: params.AddToProfile,
		Rating:       params.Rating,
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if params.BuildID != nil {
		b.ID = *params.BuildID
		if err := svc.repo.Update(wdbCtx, b); err != nil {
			log.Error(ctx, "repository update build", logger.Int64("build_id", b.ID), logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		id, err := svc.repo.Create(wdbCtx, b)
		if err != nil {
			log.Error(ctx, "repository create build", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		b.ID = id
	}

	event := model.PartUsage{
		EventID:    uuid.New(),
		BuildID:    b.ID,
		UserID:     b.UserID,
		Parts:      refs,
		OccurredAt: time.Now().UTC(),
	}
	if err := svc.usage.SendPartUsage(ctx, event); err != nil {
		log.Warn(ctx, "send part usage",
			logger.String("event_id", event.EventID.String()),
			logger.ErrorF(err),
		)
	}

	log.Info(ctx, "build saved",
		logger.Int64("build_id", b.ID),
		logger.Float64("total_price", total),
	)
	return b, nil
}

// UserBuilds lists the user's configurations with every filled slot expanded.
func (svc *service) UserBuilds(ctx context.Context, userID int64) ([]model.Build, error) {
	const op string = "build.service.UserBuilds"
	log := logger.With(logger.Int64("user_id", userID))

	if userID <= 0 {
		log.Error(ctx, "wrong user id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	builds, err := svc.repo.ByUser(rdbCtx, userID)
	if err != nil {
		log.Error(ctx, "repository builds by user", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentHydrations)
	for i := range builds {
		eg.Go(func() error {
			details, err := svc.details.PartDetails(egCtx, builds[i].Parts)
			if err != nil {
				return fmt.Errorf("build %d: %w", builds[i].ID, err)
			}
			builds[i].Details = details
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Error(ctx, "hydrate builds", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return builds, nil
}
