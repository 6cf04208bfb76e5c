package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/service/build/mocks"
	"github.com/you-humble/pcbuilder/platform/logger"
)

func ptr[T any](v T) *T { return &v }

type deps struct {
	repository *mocks.MockBuildRepository
	prices     *mocks.MockPriceCalculator
	details    *mocks.MockPartDetailer
	usage      *mocks.MockUsageProducer
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockBuildRepository(t),
		prices:     mocks.NewMockPriceCalculator(t),
		details:    mocks.NewMockPartDetailer(t),
		usage:      mocks.NewMockUsageProducer(t),
	}
}

func newSvc(d deps) *service {
	return NewBuildService(d.repository, d.prices, d.details, d.usage, time.Second, time.Second)
}

func TestServiceSave(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	userID := int64(gofakeit.IntRange(1, 10_000))
	buildID := int64(gofakeit.IntRange(1, 10_000))
	total := gofakeit.Price(300, 3000)
	parts := model.BuildParts{
		CPUID:         ptr(int64(1)),
		StorageID:     ptr(int64(30)),
		StorageID2:    ptr(int64(30)),
		MotherboardID: ptr(int64(40)),
	}

	type testCase struct {
		name   string
		params model.SaveBuildParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.Build, err error)
	}

	tests := []testCase{
		{
			name:   "validation error: no user",
			params: model.SaveBuildParams{Parts: parts},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *model.Build, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:   "validation error: empty configuration",
			params: model.SaveBuildParams{UserID: userID},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *model.Build, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:   "success: new build reports every filled slot",
			params: model.SaveBuildParams{UserID: userID, Parts: parts, AddToProfile: true},
			setup: func(d deps) {
				d.prices.On("TotalPrice", mock.Anything, parts).Return(total, nil).Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(b *model.Build) bool {
						return b.UserID == userID && b.TotalPrice == total && b.AddToProfile
					})).
					Return(buildID, nil).
					Once()
				d.usage.
					On("SendPartUsage", mock.Anything, mock.MatchedBy(func(e model.PartUsage) bool {
						return e.EventID != uuid.Nil &&
							e.BuildID == buildID &&
							e.UserID == userID &&
							len(e.Parts) == 4 &&
							e.Parts[1] == model.PartRef{Category: model.CategoryStorage, ID: 30} &&
							e.Parts[2] == model.PartRef{Category: model.CategoryStorage, ID: 30}
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Build, err error) {
				require.NoError(t, err)
				assert.Equal(t, buildID, res.ID)
				assert.Equal(t, total, res.TotalPrice)
			},
		},
		{
			name:   "success: existing build is updated",
			params: model.SaveBuildParams{UserID: userID, BuildID: ptr(buildID), Parts: parts, Rating: ptr(8.5)},
			setup: func(d deps) {
				d.prices.On("TotalPrice", mock.Anything, parts).Return(total, nil).Once()
				d.repository.
					On("Update", mock.Anything, mock.MatchedBy(func(b *model.Build) bool {
						return b.ID == buildID && b.Rating != nil && *b.Rating == 8.5
					})).
					Return(nil).
					Once()
				d.usage.On("SendPartUsage", mock.Anything, mock.Anything).Return(nil).Once()
			},
			assert: func(t *testing.T, res *model.Build, err error) {
				require.NoError(t, err)
				assert.Equal(t, buildID, res.ID)
			},
		},
		{
			name:   "usage failure does not fail the save",
			params: model.SaveBuildParams{UserID: userID, Parts: parts},
			setup: func(d deps) {
				d.prices.On("TotalPrice", mock.Anything, parts).Return(total, nil).Once()
				d.repository.On("Create", mock.Anything, mock.Anything).Return(buildID, nil).Once()
				d.usage.On("SendPartUsage", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			assert: func(t *testing.T, res *model.Build, err error) {
				require.NoError(t, err)
				assert.Equal(t, buildID, res.ID)
			},
		},
		{
			name:   "unknown part",
			params: model.SaveBuildParams{UserID: userID, Parts: parts},
			setup: func(d deps) {
				d.prices.On("TotalPrice", mock.Anything, parts).Return(float64(0), model.ErrPartNotFound).Once()
			},
			assert: func(t *testing.T, res *model.Build, err error) {
				assert.ErrorIs(t, err, model.ErrPartNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name:   "foreign build",
			params: model.SaveBuildParams{UserID: userID, BuildID: ptr(buildID), Parts: parts},
			setup: func(d deps) {
				d.prices.On("TotalPrice", mock.Anything, parts).Return(total, nil).Once()
				d.repository.On("Update", mock.Anything, mock.Anything).Return(model.ErrBuildNotFound).Once()
			},
			assert: func(t *testing.T, res *model.Build, err error) {
				assert.ErrorIs(t, err, model.ErrBuildNotFound)
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			res, err := newSvc(d).Save(context.Background(), tt.params)
			tt.assert(t, res, err)
		})
	}
}

func TestServiceUserBuilds(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	gaming := model.BuildParts{CPUID: ptr(int64(1)), StorageID: ptr(int64(30)), StorageID2: ptr(int64(30))}
	office := model.BuildParts{CaseID: ptr(int64(60))}

	stored := func() []model.Build {
		return []model.Build{
			{ID: 1, UserID: 7, Parts: gaming, TotalPrice: gofakeit.Price(300, 3000)},
			{ID: 2, UserID: 7, Parts: office, TotalPrice: gofakeit.Price(300, 3000)},
		}
	}
	gamingDetails := &model.ResolvedBuild{
		CPU:      &model.PartDetail{ID: 1, Name: "AMD Ryzen 5 5600X"},
		Storage:  &model.PartDetail{ID: 30, Name: "Seagate Barracuda 2000GB"},
		Storage2: &model.PartDetail{ID: 30, Name: "Seagate Barracuda 2000GB"},
	}
	officeDetails := &model.ResolvedBuild{Case: &model.PartDetail{ID: 60, Name: "NZXT H510"}}

	tests := []struct {
		name   string
		userID int64
		setup  func(d deps)
		assert func(t *testing.T, res []model.Build, err error)
	}{
		{
			name:   "success: every build expanded",
			userID: 7,
			setup: func(d deps) {
				d.repository.On("ByUser", mock.Anything, int64(7)).Return(stored(), nil).Once()
				d.details.On("PartDetails", mock.Anything, gaming).Return(gamingDetails, nil).Once()
				d.details.On("PartDetails", mock.Anything, office).Return(officeDetails, nil).Once()
			},
			assert: func(t *testing.T, res []model.Build, err error) {
				require.NoError(t, err)
				require.Len(t, res, 2)
				assert.Equal(t, int64(1), res[0].ID)
				assert.Equal(t, gamingDetails, res[0].Details)
				assert.Equal(t, officeDetails, res[1].Details)
			},
		},
		{
			name:   "no builds",
			userID: 7,
			setup: func(d deps) {
				d.repository.On("ByUser", mock.Anything, int64(7)).Return([]model.Build{}, nil).Once()
			},
			assert: func(t *testing.T, res []model.Build, err error) {
				require.NoError(t, err)
				assert.Empty(t, res)
			},
		},
		{
			name:   "invalid user",
			userID: 0,
			setup:  func(d deps) {},
			assert: func(t *testing.T, res []model.Build, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:   "repository failure",
			userID: 7,
			setup: func(d deps) {
				d.repository.On("ByUser", mock.Anything, int64(7)).Return(nil, errors.New("timeout")).Once()
			},
			assert: func(t *testing.T, res []model.Build, err error) {
				assert.ErrorContains(t, err, "timeout")
				assert.Nil(t, res)
			},
		},
		{
			name:   "hydration failure",
			userID: 7,
			setup: func(d deps) {
				d.repository.On("ByUser", mock.Anything, int64(7)).Return(stored(), nil).Once()
				d.details.On("PartDetails", mock.Anything, gaming).Return(gamingDetails, nil).Maybe()
				d.details.On("PartDetails", mock.Anything, office).Return(nil, errors.New("pool closed")).Once()
			},
			assert: func(t *testing.T, res []model.Build, err error) {
				assert.ErrorContains(t, err, "pool closed")
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			res, err := newSvc(d).UserBuilds(context.Background(), tt.userID)
			tt.assert(t, res, err)
		})
	}
}
