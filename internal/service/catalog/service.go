package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/logger"
)

type CatalogRepository interface {
	List(ctx context.Context, category model.Category) ([]model.PartSummary, error)
	PartByID(ctx context.Context, category model.Category, id int64) (*model.Part, error)
	Prices(ctx context.Context, refs []model.PartRef) (map[model.PartRef]float64, error)
	Games(ctx context.Context, q model.GameQuery) ([]model.Game, int64, error)
}

type service struct {
	repo          CatalogRepository
	readDBTimeout time.Duration
}

func NewCatalogService(repo CatalogRepository, readDBTimeout time.Duration) *service {
	return &service{
		repo:          repo,
		readDBTimeout: readDBTimeout,
	}
}

// ListAll reads every category concurrently. Any failure fails the whole listing.
func (svc *service) ListAll(ctx context.Context) (model.CatalogListing, error) {
	const op string = "catalog.service.ListAll"

	lists := make([][]model.PartSummary, len(model.Categories))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, category := range model.Categories {
		eg.Go(func() error {
			parts, err := svc.List(egCtx, category)
			if err != nil {
				return err
			}
			lists[i] = parts
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Error(ctx, "list catalog", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	listing := make(model.CatalogListing, len(model.Categories))
	for i, category := range model.Categories {
		listing[category] = lists[i]
	}

	return listing, nil
}

func (svc *service) List(ctx context.Context, category model.Category) ([]model.PartSummary, error) {
	const op string = "catalog.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	parts, err := svc.repo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, category, err)
	}

	return parts, nil
}

// Hydrate returns the display-ready record of id. A nil id or a missing row yields nil.
func (svc *service) Hydrate(ctx context.Context, category model.Category, id *int64) (*model.PartDetail, error) {
	const op string = "catalog.service.Hydrate"

	if id == nil {
		return nil, nil
	}

	log := logger.With(
		logger.String("category", category.String()),
		logger.Int64("part_id", *id),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	part, err := svc.repo.PartByID(ctx, category, *id)
	if err != nil {
		if errors.Is(err, model.ErrPartNotFound) {
			log.Warn(ctx, "resolved part is gone from catalog")
			return nil, nil
		}
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ToDetail(part), nil
}

// PartDetails hydrates the eight slots of parts concurrently.
func (svc *service) PartDetails(ctx context.Context, parts model.BuildParts) (*model.ResolvedBuild, error) {
	const op string = "catalog.service.PartDetails"

	var res model.ResolvedBuild
	slots := []struct {
		category model.Category
		id       *int64
		dst      **model.PartDetail
	}{
		{model.CategoryCPU, parts.CPUID, &res.CPU},
		{model.CategoryGPU, parts.GPUID, &res.GPU},
		{model.CategoryMemory, parts.MemoryID, &res.Memory},
		{model.CategoryPowerSupply, parts.PowerSupplyID, &res.PowerSupply},
		{model.CategoryCase, parts.CaseID, &res.Case},
		{model.CategoryStorage, parts.StorageID, &res.Storage},
		{model.CategoryStorage, parts.StorageID2, &res.Storage2},
		{model.CategoryMotherboard, parts.MotherboardID, &res.Motherboard},
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, s := range slots {
		eg.Go(func() error {
			detail, err := svc.Hydrate(egCtx, s.category, s.id)
			if err != nil {
				return err
			}
			*s.dst = detail
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &res, nil
}

// TotalPrice sums the price of every filled slot. A part used twice counts twice.
func (svc *service) TotalPrice(ctx context.Context, parts model.BuildParts) (float64, error) {
	const op string = "catalog.service.TotalPrice"

	refs := parts.Refs()
	if len(refs) == 0 {
		return 0, nil
	}

	byCategory := lo.GroupBy(refs, func(ref model.PartRef) model.Category { return ref.Category })
	groups := lo.Values(byCategory)
	prices := make([]map[model.PartRef]float64, len(groups))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	for i, group := range groups {
		eg.Go(func() error {
			p, err := svc.repo.Prices(egCtx, group)
			if err != nil {
				return err
			}
			prices[i] = p
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Error(ctx, "repository prices", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	merged := lo.Assign(prices...)

	var total float64
	for _, ref := range refs {
		total += merged[ref]
	}

	return total, nil
}

// Games returns one page of the games listing. Zero page or limit take the defaults.
func (svc *service) Games(ctx context.Context, q model.GameQuery) (*model.GamePage, error) {
	const op string = "catalog.service.Games"
	log := logger.With(
		logger.String("search", q.Search),
		logger.Int("page", q.Page),
		logger.Int("limit", q.Limit),
	)

	q.Search = strings.TrimSpace(q.Search)
	if q.Page == 0 {
		q.Page = model.DefaultGamesPage
	}
	if q.Limit == 0 {
		q.Limit = model.DefaultGamesLimit
	}
	if q.Page < 0 || q.Limit < 0 || q.Limit > model.MaxGamesLimit {
		log.Error(ctx, "wrong games query")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	games, total, err := svc.repo.Games(ctx, q)
	if err != nil {
		log.Error(ctx, "repository games", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.GamePage{
		Games: games,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

// ToDetail projects a catalog row into its display form.
func ToDetail(p *model.Part) *model.PartDetail {
	if p == nil {
		return nil
	}

	return &model.PartDetail{
		ID:         p.ID,
		Category:   p.Category.String(),
		Name:       p.EffectiveName(),
		RawName:    p.Name,
		Price:      p.Price,
		ImageURL:   model.NormalizeImageURL(p.ImageURL),
		ProductURL: p.ProductURL,
		UsageCount: p.UsageCount,
		Specs:      p.Specs,
	}
}
