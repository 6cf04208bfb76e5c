package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/pcbuilder/internal/extractor"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/prompt"
	"github.com/you-humble/pcbuilder/platform/logger"
)

const imageSearchConcurrency = 8

// GetAssemblyGuideAndImages attaches image search results to every step of the
// guide. A failed search only empties the images of its own prompt.
func (svc *service) GetAssemblyGuideAndImages(ctx context.Context, parts model.AssemblyParts) (*model.AssemblyGuide, error) {
	const op string = "advisor.service.GetAssemblyGuideAndImages"
	log := logger.With(logger.String("use_case", "getassemblyguide"))

	text, err := svc.complete(ctx, prompt.AssemblyGuide(parts))
	if err != nil {
		log.Error(ctx, "oracle complete", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	var guide model.AssemblyGuide
	if err := extractor.Extract(text, &guide); err != nil {
		log.Warn(ctx, "extract guide", logger.ErrorF(err))
		return nil, wrap(op, err)
	}

	found := make([][][]string, len(guide.Steps))

	var eg errgroup.Group
	eg.SetLimit(imageSearchConcurrency)
	for i, step := range guide.Steps {
		found[i] = make([][]string, len(step.ImagePrompts))
		for j, q := range step.ImagePrompts {
			eg.Go(func() error {
				links, err := svc.images.SearchImages(ctx, q)
				if err != nil {
					log.Warn(ctx, "image search failed",
						logger.String("prompt", q),
						logger.ErrorF(err),
					)
					return nil
				}
				found[i][j] = links
				return nil
			})
		}
	}
	_ = eg.Wait()

	for i := range guide.Steps {
		images := make([]string, 0, len(found[i]))
		for _, links := range found[i] {
			images = append(images, links...)
		}
		guide.Steps[i].Images = images
		if guide.Steps[i].Description == nil {
			guide.Steps[i].Description = model.TextList{}
		}
		if guide.Steps[i].ImagePrompts == nil {
			guide.Steps[i].ImagePrompts = model.TextList{}
		}
	}
	if guide.Steps == nil {
		guide.Steps = []model.AssemblyStep{}
	}
	if guide.Tools == nil {
		guide.Tools = model.TextList{}
	}
	if guide.CableManagementTips == nil {
		guide.CableManagementTips = model.TextList{}
	}
	if guide.CommonPitfalls == nil {
		guide.CommonPitfalls = model.TextList{}
	}

	return &guide, nil
}
