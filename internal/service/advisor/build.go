package service

import (
	"context"
	"strings"

	"github.com/you-humble/pcbuilder/internal/extractor"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/prompt"
	"github.com/you-humble/pcbuilder/platform/logger"
)

type buildSuggestion struct {
	CPU         string `json:"cpu"`
	GPU         string `json:"gpu"`
	RAM         string `json:"ram"`
	PSU         string `json:"psu"`
	Case        string `json:"case"`
	HDD         string `json:"hdd"`
	SSD         string `json:"ssd"`
	Motherboard string `json:"motherboard"`
}

// GetPC asks the oracle for a build and reconciles it against the catalog.
// The build must anchor to a catalog motherboard; every other slot may stay empty.
func (svc *service) GetPC(ctx context.Context, userPrompt string, opts model.GetPCOptions) (*model.ResolvedBuild, error) {
	const op string = "advisor.service.GetPC"
	log := logger.With(
		logger.String("use_case", "getpc"),
		logger.Bool("prioritize_performance", opts.PrioritizePerformance),
	)

	if strings.TrimSpace(userPrompt) == "" {
		log.Warn(ctx, "empty prompt")
		return nil, wrap(op, model.ErrValidation)
	}

	resolver := svc.strict
	if opts.PrioritizePerformance {
		resolver = svc.perf
	}

	corpora, err := svc.loadCorpora(ctx, resolver.Config())
	if err != nil {
		log.Error(ctx, "load catalog", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	boards := corpora.get(model.CategoryMotherboard)
	text, err := svc.complete(ctx, prompt.Build(userPrompt, boards.Names()))
	if err != nil {
		log.Error(ctx, "oracle complete", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	var s buildSuggestion
	if err := extractor.Extract(text, &s); err != nil {
		log.Warn(ctx, "extract suggestion", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	board, err := resolver.MustResolve(boards, s.Motherboard)
	if err != nil {
		log.Warn(ctx, "motherboard outside catalog", logger.String("candidate", s.Motherboard))
		return nil, wrap(op, model.ErrInvalidMotherboard)
	}

	parts := model.BuildParts{
		CPUID:         resolveID(ctx, resolver, corpora.get(model.CategoryCPU), "cpu", s.CPU),
		GPUID:         resolveID(ctx, resolver, corpora.get(model.CategoryGPU), "gpu", s.GPU),
		MemoryID:      resolveID(ctx, resolver, corpora.get(model.CategoryMemory), "ram", s.RAM),
		PowerSupplyID: resolveID(ctx, resolver, corpora.get(model.CategoryPowerSupply), "psu", s.PSU),
		CaseID:        resolveID(ctx, resolver, corpora.get(model.CategoryCase), "case", s.Case),
		StorageID:     resolveID(ctx, resolver, corpora.get(model.CategoryStorage), "hdd", s.HDD),
		StorageID2:    resolveID(ctx, resolver, corpora.get(model.CategoryStorage), "ssd", s.SSD),
		MotherboardID: &board.Part.ID,
	}

	res, err := svc.hydrator.PartDetails(ctx, parts)
	if err != nil {
		log.Error(ctx, "hydrate build", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	log.Info(ctx, "build generated", logger.Int("resolved_slots", len(parts.Refs())))
	return res, nil
}
