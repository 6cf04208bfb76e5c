package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/pcbuilder/internal/model"
)

// partUsageRecord is the wire shape of the part.usage topic.
type partUsageRecord struct {
	EventUUID  string          `json:"event_uuid"`
	BuildID    int64           `json:"build_id"`
	UserID     int64           `json:"user_id"`
	Parts      []partRefRecord `json:"parts"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type partRefRecord struct {
	Category string `json:"category"`
	ID       int64  `json:"id"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) PartUsageToPayload(m model.PartUsage) ([]byte, error) {
	rec := partUsageRecord{
		EventUUID:  m.EventID.String(),
		BuildID:    m.BuildID,
		UserID:     m.UserID,
		Parts:      make([]partRefRecord, len(m.Parts)),
		OccurredAt: m.OccurredAt,
	}
	for i, ref := range m.Parts {
		rec.Parts[i] = partRefRecord{Category: ref.Category.String(), ID: ref.ID}
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal part usage: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PartUsageToModel(data []byte) (model.PartUsage, error) {
	var rec partUsageRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.PartUsage{}, fmt.Errorf("failed to unmarshal part usage: %w", err)
	}

	eventID, err := uuid.Parse(rec.EventUUID)
	if err != nil {
		return model.PartUsage{}, fmt.Errorf("event uuid %q: %w", rec.EventUUID, err)
	}

	parts := make([]model.PartRef, len(rec.Parts))
	for i, p := range rec.Parts {
		category, ok := model.ParseCategory(p.Category)
		if !ok {
			return model.PartUsage{}, fmt.Errorf("part %d: %w %q", p.ID, model.ErrUnknownCategory, p.Category)
		}
		parts[i] = model.PartRef{Category: category, ID: p.ID}
	}

	return model.PartUsage{
		EventID:    eventID,
		BuildID:    rec.BuildID,
		UserID:     rec.UserID,
		Parts:      parts,
		OccurredAt: rec.OccurredAt,
	}, nil
}
