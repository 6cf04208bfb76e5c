package service

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/pcbuilder/internal/extractor"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/prompt"
	"github.com/you-humble/pcbuilder/platform/logger"
)

type compatibilityResponse struct {
	CompatibilityIssues []struct {
		Issue          string                `json:"issue"`
		CausingParts   model.TextList        `json:"causingParts"`
		SuggestedParts []model.SuggestedPart `json:"suggestedParts"`
	} `json:"compatibilityIssues"`
}

// CheckCompatibility asks the oracle for issues and turns the first suggestions of
// every issue into catalog parts. Suggestions outside the catalog are dropped.
func (svc *service) CheckCompatibility(ctx context.Context, system model.SystemSpec) (*model.CompatibilityReport, error) {
	const op string = "advisor.service.CheckCompatibility"
	log := logger.With(logger.String("use_case", "checkcompatibility"))

	corpora, err := svc.loadCorpora(ctx, svc.loose.Config())
	if err != nil {
		log.Error(ctx, "load catalog", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	boards := corpora.get(model.CategoryMotherboard).Names()
	text, err := svc.complete(ctx, prompt.Compatibility(system, boards))
	if err != nil {
		log.Error(ctx, "oracle complete", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	var raw compatibilityResponse
	if err := extractor.Extract(text, &raw); err != nil {
		log.Warn(ctx, "extract compatibility", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	details := make([][]*model.PartDetail, len(raw.CompatibilityIssues))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, issue := range raw.CompatibilityIssues {
		suggestions := lo.Slice(issue.SuggestedParts, 0, maxSuggestedParts)
		details[i] = make([]*model.PartDetail, len(suggestions))

		for j, sp := range suggestions {
			category, ok := model.ParseCategory(sp.Type)
			if !ok {
				log.Debug(ctx, "suggestion with unknown type", logger.String("type", sp.Type))
				continue
			}

			id := resolveID(ctx, svc.loose, corpora.get(category), category.String(), sp.Name)
			if id == nil {
				continue
			}

			eg.Go(func() error {
				d, err := svc.hydrator.Hydrate(egCtx, category, id)
				if err != nil {
					return err
				}
				if d != nil {
					d.Type = sp.Type
				}
				details[i][j] = d
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		log.Error(ctx, "hydrate suggestions", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	report := &model.CompatibilityReport{
		CompatibilityIssues: make([]model.CompatibilityIssue, len(raw.CompatibilityIssues)),
	}
	for i, issue := range raw.CompatibilityIssues {
		causing := []string(issue.CausingParts)
		if causing == nil {
			causing = []string{}
		}

		report.CompatibilityIssues[i] = model.CompatibilityIssue{
			Issue:        issue.Issue,
			CausingParts: causing,
			SuggestedParts: lo.FilterMap(details[i], func(d *model.PartDetail, _ int) (model.PartDetail, bool) {
				if d == nil {
					return model.PartDetail{}, false
				}
				return *d, true
			}),
		}
	}

	return report, nil
}
