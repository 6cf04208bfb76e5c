package usageconsumer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pcbuilder/internal/converter"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/kafka"
	"github.com/you-humble/pcbuilder/platform/logger"
)

type fakeConsumer struct {
	consumeFn func(ctx context.Context, handler kafka.MessageHandler) error
}

func (c fakeConsumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	return c.consumeFn(ctx, handler)
}

type fakeRecorder struct {
	mu    sync.Mutex
	errs  map[model.PartRef]error
	calls []model.PartRef
}

func (r *fakeRecorder) IncrementUsage(_ context.Context, category model.Category, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref := model.PartRef{Category: category, ID: id}
	r.calls = append(r.calls, ref)
	return r.errs[ref]
}

func payload(t *testing.T, refs ...model.PartRef) []byte {
	t.Helper()
	b, err := converter.NewKafkaConverter().PartUsageToPayload(model.PartUsage{
		EventID: uuid.New(),
		BuildID: 1,
		UserID:  1,
		Parts:   refs,
	})
	require.NoError(t, err)
	return b
}

func TestRunPartUsageConsume(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	consumeErr := errors.New("consume error")

	tests := []struct {
		name    string
		consume func(ctx context.Context, handler kafka.MessageHandler) error
		wantErr error
	}{
		{
			name: "success",
			consume: func(ctx context.Context, handler kafka.MessageHandler) error {
				return nil
			},
		},
		{
			name: "consumer error returned",
			consume: func(ctx context.Context, handler kafka.MessageHandler) error {
				return consumeErr
			},
			wantErr: consumeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewUsageConsumer(fakeConsumer{consumeFn: tt.consume}, converter.NewKafkaConverter(), &fakeRecorder{})
			err := s.RunPartUsageConsume(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPartUsageHandler(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	cpu := model.PartRef{Category: model.CategoryCPU, ID: 1}
	ssd := model.PartRef{Category: model.CategoryStorage, ID: 31}
	dbErr := errors.New("db down")

	tests := []struct {
		name      string
		value     []byte
		errs      map[model.PartRef]error
		wantCalls []model.PartRef
		wantErr   bool
	}{
		{
			name:      "one increment per slot",
			value:     payload(t, cpu, ssd, ssd),
			wantCalls: []model.PartRef{cpu, ssd, ssd},
		},
		{
			name:      "removed part is skipped",
			value:     payload(t, cpu, ssd),
			errs:      map[model.PartRef]error{cpu: model.ErrPartNotFound},
			wantCalls: []model.PartRef{cpu, ssd},
		},
		{
			name:      "storage failure stops the event",
			value:     payload(t, cpu, ssd),
			errs:      map[model.PartRef]error{cpu: dbErr},
			wantCalls: []model.PartRef{cpu},
			wantErr:   true,
		},
		{
			name:    "undecodable payload",
			value:   []byte("{"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &fakeRecorder{errs: tt.errs}
			var handled error
			s := NewUsageConsumer(fakeConsumer{consumeFn: func(ctx context.Context, handler kafka.MessageHandler) error {
				handled = handler(ctx, kafka.Message{Topic: "part.usage", Value: tt.value})
				return nil
			}}, converter.NewKafkaConverter(), rec)

			require.NoError(t, s.RunPartUsageConsume(context.Background()))
			if tt.wantErr {
				assert.Error(t, handled)
			} else {
				assert.NoError(t, handled)
			}
			assert.Equal(t, tt.wantCalls, rec.calls)
		})
	}
}
