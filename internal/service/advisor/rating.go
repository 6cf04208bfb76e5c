package service

import (
	"context"

	"github.com/you-humble/pcbuilder/internal/extractor"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/prompt"
	"github.com/you-humble/pcbuilder/platform/logger"
)

func (svc *service) RatePC(ctx context.Context, system model.SystemSpec) (*model.Rating, error) {
	const op string = "advisor.service.RatePC"
	log := logger.With(logger.String("use_case", "ratepc"))

	text, err := svc.complete(ctx, prompt.Rating(system))
	if err != nil {
		log.Error(ctx, "oracle complete", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	var rating model.Rating
	if err := extractor.Extract(text, &rating); err != nil {
		log.Warn(ctx, "extract rating", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	return &rating, nil
}
