package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/service/catalog/mocks"
	"github.com/you-humble/pcbuilder/platform/logger"
)

func ptr[T any](v T) *T { return &v }

func TestServiceListAll(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	type deps struct {
		repository *mocks.MockCatalogRepository
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, res model.CatalogListing, err error)
	}

	tests := []testCase{
		{
			name: "success: every category listed",
			setup: func(d deps) {
				for _, c := range model.Categories {
					d.repository.
						On("List", mock.Anything, c).
						Return([]model.PartSummary{{ID: int64(c), Category: c, Name: c.String()}}, nil).
						Once()
				}
			},
			assert: func(t *testing.T, res model.CatalogListing, err error) {
				require.NoError(t, err)
				require.Len(t, res, len(model.Categories))
				for _, c := range model.Categories {
					require.Len(t, res[c], 1)
					assert.Equal(t, int64(c), res[c][0].ID)
				}
			},
		},
		{
			name: "one failing category fails the listing",
			setup: func(d deps) {
				for _, c := range model.Categories {
					if c == model.CategoryStorage {
						d.repository.
							On("List", mock.Anything, c).
							Return(nil, errors.New("relation storage does not exist")).
							Maybe()
						continue
					}
					d.repository.
						On("List", mock.Anything, c).
						Return([]model.PartSummary{}, nil).
						Maybe()
				}
			},
			assert: func(t *testing.T, res model.CatalogListing, err error) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "relation storage does not exist")
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockCatalogRepository(t)}
			tt.setup(d)

			svc := NewCatalogService(d.repository, time.Second)
			res, err := svc.ListAll(context.Background())
			tt.assert(t, res, err)
		})
	}
}

func TestServiceHydrate(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	imageURL := "//cdn.example/psu.jpg"
	productURL := "https://shop.example/psu"
	part := &model.Part{
		PartSummary: model.PartSummary{
			ID:       7,
			Category: model.CategoryPowerSupply,
			Name:     "Corsair RM750x",
			WattageW: 750,
		},
		Price:      gofakeit.Price(50, 200),
		ImageURL:   &imageURL,
		ProductURL: &productURL,
		UsageCount: 3,
	}

	tests := []struct {
		name   string
		id     *int64
		setup  func(r *mocks.MockCatalogRepository)
		assert func(t *testing.T, res *model.PartDetail, err error)
	}{
		{
			name:  "nil id is a no-op",
			id:    nil,
			setup: func(r *mocks.MockCatalogRepository) {},
			assert: func(t *testing.T, res *model.PartDetail, err error) {
				require.NoError(t, err)
				assert.Nil(t, res)
			},
		},
		{
			name: "success: composite name and https image",
			id:   ptr(int64(7)),
			setup: func(r *mocks.MockCatalogRepository) {
				r.On("PartByID", mock.Anything, model.CategoryPowerSupply, int64(7)).Return(part, nil).Once()
			},
			assert: func(t *testing.T, res *model.PartDetail, err error) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, "Corsair RM750x 750W", res.Name)
				assert.Equal(t, "Corsair RM750x", res.RawName)
				assert.Equal(t, "powerSupply", res.Category)
				require.NotNil(t, res.ImageURL)
				assert.Equal(t, "https://cdn.example/psu.jpg", *res.ImageURL)
				assert.Equal(t, "//cdn.example/psu.jpg", imageURL)
				assert.Equal(t, part.Price, res.Price)
				assert.Equal(t, int64(3), res.UsageCount)
			},
		},
		{
			name: "missing row hydrates to nil",
			id:   ptr(int64(9)),
			setup: func(r *mocks.MockCatalogRepository) {
				r.On("PartByID", mock.Anything, model.CategoryPowerSupply, int64(9)).
					Return(nil, model.ErrPartNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.PartDetail, err error) {
				require.NoError(t, err)
				assert.Nil(t, res)
			},
		},
		{
			name: "repository failure propagates",
			id:   ptr(int64(9)),
			setup: func(r *mocks.MockCatalogRepository) {
				r.On("PartByID", mock.Anything, model.CategoryPowerSupply, int64(9)).
					Return(nil, errors.New("conn reset")).
					Once()
			},
			assert: func(t *testing.T, res *model.PartDetail, err error) {
				require.Error(t, err)
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockCatalogRepository(t)
			tt.setup(repo)

			svc := NewCatalogService(repo, time.Second)
			res, err := svc.Hydrate(context.Background(), model.CategoryPowerSupply, tt.id)
			tt.assert(t, res, err)
		})
	}
}

func TestServicePartDetails(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	repo := mocks.NewMockCatalogRepository(t)
	repo.On("PartByID", mock.Anything, mock.Anything, mock.Anything).
		Return(func(_ context.Context, c model.Category, id int64) *model.Part {
			return &model.Part{PartSummary: model.PartSummary{ID: id, Category: c, Name: c.String(), CapacityGB: 1000}}
		}, nil)

	svc := NewCatalogService(repo, time.Second)
	res, err := svc.PartDetails(context.Background(), model.BuildParts{
		CPUID:         ptr(int64(1)),
		StorageID:     ptr(int64(5)),
		StorageID2:    ptr(int64(6)),
		MotherboardID: ptr(int64(2)),
	})
	require.NoError(t, err)

	require.NotNil(t, res.CPU)
	assert.Equal(t, int64(1), res.CPU.ID)
	require.NotNil(t, res.Storage)
	assert.Equal(t, "storage 1000GB", res.Storage.Name)
	require.NotNil(t, res.Storage2)
	assert.Equal(t, int64(6), res.Storage2.ID)
	require.NotNil(t, res.Motherboard)
	assert.Nil(t, res.GPU)
	assert.Nil(t, res.Memory)
	assert.Nil(t, res.PowerSupply)
	assert.Nil(t, res.Case)
	repo.AssertNumberOfCalls(t, "PartByID", 4)
}

func TestServiceTotalPrice(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	cpu := gofakeit.Price(100, 500)
	ssd := gofakeit.Price(50, 150)

	tests := []struct {
		name   string
		parts  model.BuildParts
		setup  func(r *mocks.MockCatalogRepository)
		assert func(t *testing.T, total float64, err error)
	}{
		{
			name:  "empty build costs nothing",
			parts: model.BuildParts{},
			setup: func(r *mocks.MockCatalogRepository) {},
			assert: func(t *testing.T, total float64, err error) {
				require.NoError(t, err)
				assert.Zero(t, total)
			},
		},
		{
			name:  "same storage in both slots counts twice",
			parts: model.BuildParts{CPUID: ptr(int64(1)), StorageID: ptr(int64(3)), StorageID2: ptr(int64(3))},
			setup: func(r *mocks.MockCatalogRepository) {
				r.On("Prices", mock.Anything, []model.PartRef{{Category: model.CategoryCPU, ID: 1}}).
					Return(map[model.PartRef]float64{{Category: model.CategoryCPU, ID: 1}: cpu}, nil).
					Once()
				r.On("Prices", mock.Anything, mock.MatchedBy(func(refs []model.PartRef) bool {
					return len(refs) == 2 && refs[0].Category == model.CategoryStorage
				})).
					Return(map[model.PartRef]float64{{Category: model.CategoryStorage, ID: 3}: ssd}, nil).
					Once()
			},
			assert: func(t *testing.T, total float64, err error) {
				require.NoError(t, err)
				assert.InDelta(t, cpu+2*ssd, total, 1e-9)
			},
		},
		{
			name:  "unknown part adds nothing",
			parts: model.BuildParts{CaseID: ptr(int64(99))},
			setup: func(r *mocks.MockCatalogRepository) {
				r.On("Prices", mock.Anything, mock.Anything).
					Return(map[model.PartRef]float64{}, nil).
					Once()
			},
			assert: func(t *testing.T, total float64, err error) {
				require.NoError(t, err)
				assert.Zero(t, total)
			},
		},
		{
			name:  "price lookup failure",
			parts: model.BuildParts{CaseID: ptr(int64(1))},
			setup: func(r *mocks.MockCatalogRepository) {
				r.On("Prices", mock.Anything, mock.Anything).
					Return(nil, errors.New("timeout")).
					Once()
			},
			assert: func(t *testing.T, total float64, err error) {
				require.Error(t, err)
				assert.Zero(t, total)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockCatalogRepository(t)
			tt.setup(repo)

			svc := NewCatalogService(repo, time.Second)
			total, err := svc.TotalPrice(context.Background(), tt.parts)
			tt.assert(t, total, err)
		})
	}
}

func TestServiceGames(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	games := []model.Game{{ID: 5, Name: "Call of Duty: Warzone"}}

	tests := []struct {
		name   string
		query  model.GameQuery
		setup  func(repo *mocks.MockCatalogRepository)
		assert func(t *testing.T, res *model.GamePage, err error)
	}{
		{
			name:  "defaults applied and search trimmed",
			query: model.GameQuery{Search: "  war "},
			setup: func(repo *mocks.MockCatalogRepository) {
				repo.
					On("Games", mock.Anything, model.GameQuery{Search: "war", Page: 1, Limit: 10}).
					Return(games, int64(1), nil).
					Once()
			},
			assert: func(t *testing.T, res *model.GamePage, err error) {
				require.NoError(t, err)
				assert.Equal(t, games, res.Games)
				assert.Equal(t, int64(1), res.Total)
				assert.Equal(t, 1, res.Page)
				assert.Equal(t, 10, res.Limit)
			},
		},
		{
			name:  "page beyond the last one is empty",
			query: model.GameQuery{Page: 7, Limit: 5},
			setup: func(repo *mocks.MockCatalogRepository) {
				repo.
					On("Games", mock.Anything, model.GameQuery{Page: 7, Limit: 5}).
					Return([]model.Game{}, int64(12), nil).
					Once()
			},
			assert: func(t *testing.T, res *model.GamePage, err error) {
				require.NoError(t, err)
				assert.Empty(t, res.Games)
				assert.Equal(t, int64(12), res.Total)
				assert.Equal(t, 7, res.Page)
			},
		},
		{
			name:  "negative page",
			query: model.GameQuery{Page: -1},
			setup: func(*mocks.MockCatalogRepository) {},
			assert: func(t *testing.T, res *model.GamePage, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:  "limit above maximum",
			query: model.GameQuery{Limit: model.MaxGamesLimit + 1},
			setup: func(*mocks.MockCatalogRepository) {},
			assert: func(t *testing.T, res *model.GamePage, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:  "repository failure",
			query: model.GameQuery{Search: gofakeit.Word()},
			setup: func(repo *mocks.MockCatalogRepository) {
				repo.
					On("Games", mock.Anything, mock.Anything).
					Return(nil, int64(0), errors.New("pool closed")).
					Once()
			},
			assert: func(t *testing.T, res *model.GamePage, err error) {
				assert.ErrorContains(t, err, "pool closed")
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockCatalogRepository(t)
			tt.setup(repo)

			res, err := NewCatalogService(repo, time.Second).Games(context.Background(), tt.query)
			tt.assert(t, res, err)
		})
	}
}
