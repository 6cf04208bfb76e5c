package usageproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/kafka"
)

type Converter interface {
	PartUsageToPayload(m model.PartUsage) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewUsageProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendPartUsage keys the record by build so events of one build stay ordered.
func (s *service) SendPartUsage(ctx context.Context, event model.PartUsage) error {
	payload, err := s.conv.PartUsageToPayload(event)
	if err != nil {
		return fmt.Errorf("converter part_usage_to_payload error: %w", err)
	}

	key := []byte(fmt.Sprintf("build-%d", event.BuildID))
	if err := s.producer.Send(ctx, key, payload,
		kafka.Header{Key: "event_uuid", Value: []byte(event.EventID.String())},
	); err != nil {
		return fmt.Errorf("producer to part.usage topic error: %w", err)
	}

	return nil
}
