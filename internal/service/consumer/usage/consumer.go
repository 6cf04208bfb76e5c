package usageconsumer

import (
	"context"
	"errors"
	"fmt"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/kafka"
	"github.com/you-humble/pcbuilder/platform/logger"
)

type Converter interface {
	PartUsageToModel(data []byte) (model.PartUsage, error)
}

type UsageRecorder interface {
	IncrementUsage(ctx context.Context, category model.Category, id int64) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	recorder UsageRecorder
}

func NewUsageConsumer(
	consumer kafka.Consumer,
	conv Converter,
	recorder UsageRecorder,
) *service {
	return &service{consumer: consumer, conv: conv, recorder: recorder}
}

func (s *service) RunPartUsageConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting part usage consumer")

	if err := s.consumer.Consume(ctx, s.partUsageHandler); err != nil {
		logger.Error(ctx, "Consume from part.usage topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// partUsageHandler counts one use per slot. A redelivered event is counted again.
func (s *service) partUsageHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.PartUsageToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode PartUsage record", logger.ErrorF(err))
		return fmt.Errorf("converter part_usage_to_model error: %w", err)
	}

	for _, ref := range event.Parts {
		err := s.recorder.IncrementUsage(ctx, ref.Category, ref.ID)
		switch {
		case err == nil:
		case errors.Is(err, model.ErrPartNotFound):
			logger.Warn(ctx, "used part left the catalog",
				logger.String("category", ref.Category.String()),
				logger.Int64("part_id", ref.ID),
			)
		default:
			logger.Error(ctx, "increment usage",
				logger.String("event_id", event.EventID.String()),
				logger.ErrorF(err),
			)
			return err
		}
	}

	return nil
}
