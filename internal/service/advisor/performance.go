package service

import (
	"context"
	"strings"

	"github.com/you-humble/pcbuilder/internal/extractor"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/prompt"
	"github.com/you-humble/pcbuilder/platform/logger"
)

func (svc *service) GetPerformance(ctx context.Context, parts model.GamingParts, game string) (*model.Performance, error) {
	const op string = "advisor.service.GetPerformance"
	log := logger.With(
		logger.String("use_case", "getperformance"),
		logger.String("game", game),
	)

	if strings.TrimSpace(game) == "" {
		log.Warn(ctx, "empty game name")
		return nil, wrap(op, model.ErrValidation)
	}

	text, err := svc.complete(ctx, prompt.Performance(parts, game))
	if err != nil {
		log.Error(ctx, "oracle complete", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	var perf model.Performance
	if err := extractor.Extract(text, &perf); err != nil {
		log.Warn(ctx, "extract performance", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	return &perf, nil
}

// GetTemplateGraph estimates every template game at once. The grid always holds
// exactly the template games; a game the oracle skipped is reported as zeros.
func (svc *service) GetTemplateGraph(ctx context.Context, parts model.GamingParts) (model.PerformanceGrid, error) {
	const op string = "advisor.service.GetTemplateGraph"
	log := logger.With(logger.String("use_case", "templategraph"))

	text, err := svc.complete(ctx, prompt.TemplateGraph(parts, model.TemplateGames))
	if err != nil {
		log.Error(ctx, "oracle complete", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	var raw map[string]model.Performance
	if err := extractor.Extract(text, &raw); err != nil {
		log.Warn(ctx, "extract grid", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	grid := make(model.PerformanceGrid, len(model.TemplateGames))
	for _, game := range model.TemplateGames {
		perf, ok := raw[game]
		if !ok {
			log.Warn(ctx, "game missing from oracle grid", logger.String("game", game))
		}
		grid[game] = perf
	}

	return grid, nil
}
