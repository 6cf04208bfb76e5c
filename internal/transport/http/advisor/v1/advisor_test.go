package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/logger"
)

type fakeAdvisor struct {
	err error

	prompt string
	opts   model.GetPCOptions
	game   string
	gaming model.GamingParts
	system model.SystemSpec
}

func (f *fakeAdvisor) GetPC(_ context.Context, userPrompt string, opts model.GetPCOptions) (*model.ResolvedBuild, error) {
	f.prompt, f.opts = userPrompt, opts
	if f.err != nil {
		return nil, f.err
	}
	return &model.ResolvedBuild{Motherboard: &model.PartDetail{ID: 40, Name: "MSI MAG B550 Tomahawk"}}, nil
}

func (f *fakeAdvisor) GetPerformance(_ context.Context, parts model.GamingParts, game string) (*model.Performance, error) {
	f.gaming, f.game = parts, game
	if f.err != nil {
		return nil, f.err
	}
	return &model.Performance{Low: 120, Medium: 90, High: 60, Ultra: 40}, nil
}

func (f *fakeAdvisor) GetTemplateGraph(_ context.Context, parts model.GamingParts) (model.PerformanceGrid, error) {
	f.gaming = parts
	if f.err != nil {
		return nil, f.err
	}
	grid := model.PerformanceGrid{}
	for _, g := range model.TemplateGames {
		grid[g] = model.Performance{Low: 1}
	}
	return grid, nil
}

func (f *fakeAdvisor) CheckCompatibility(_ context.Context, system model.SystemSpec) (*model.CompatibilityReport, error) {
	f.system = system
	if f.err != nil {
		return nil, f.err
	}
	return &model.CompatibilityReport{CompatibilityIssues: []model.CompatibilityIssue{}}, nil
}

func (f *fakeAdvisor) RatePC(_ context.Context, system model.SystemSpec) (*model.Rating, error) {
	f.system = system
	if f.err != nil {
		return nil, f.err
	}
	return &model.Rating{CPU: 8, GPU: 9, Overall: 8.5}, nil
}

func (f *fakeAdvisor) GetAssemblyGuideAndImages(_ context.Context, _ model.AssemblyParts) (*model.AssemblyGuide, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.AssemblyGuide{Tools: model.TextList{"screwdriver"}, Steps: []model.AssemblyStep{}}, nil
}

func serve(t *testing.T, svc AdvisorService, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	r := chi.NewRouter()
	NewAdvisorHandler(svc).Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestAdvisorRoutes(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	system := `{"cpu":"Ryzen 5 5600X","gpu":"RTX 3060","ram":"16GB","storage":"","ssd":"1TB","hdd":"2TB","motherboard":"B550","psu":"750W","case":"H510"}`

	tests := []struct {
		name   string
		path   string
		body   string
		assert func(t *testing.T, f *fakeAdvisor, out map[string]any)
	}{
		{
			name: "getpc",
			path: "/getpc",
			body: `{"prompt":"gaming pc","prioritizePerformance":true}`,
			assert: func(t *testing.T, f *fakeAdvisor, out map[string]any) {
				assert.Equal(t, "gaming pc", f.prompt)
				assert.True(t, f.opts.PrioritizePerformance)
				assert.Contains(t, out["response"], "motherboard")
			},
		},
		{
			name: "getperformance",
			path: "/getperformance",
			body: `{"pcParts":{"cpu":"Ryzen","gpu":"RTX 3060","ram":"16GB"},"gameName":"Fortnite"}`,
			assert: func(t *testing.T, f *fakeAdvisor, out map[string]any) {
				assert.Equal(t, "Fortnite", f.game)
				assert.Equal(t, "RTX 3060", f.gaming.GPU)
				assert.Equal(t, map[string]any{"low": 120.0, "medium": 90.0, "high": 60.0, "ultra": 40.0}, out["response"])
			},
		},
		{
			name: "templategraph",
			path: "/templategraph",
			body: `{"pcParts":{"cpu":"Ryzen","gpu":"RTX 3060","ram":"16GB"}}`,
			assert: func(t *testing.T, f *fakeAdvisor, out map[string]any) {
				assert.Len(t, out["response"], len(model.TemplateGames))
			},
		},
		{
			name: "templagegraph alias",
			path: "/templagegraph",
			body: `{"pcParts":{"cpu":"Ryzen","gpu":"RTX 3060","ram":"16GB"}}`,
			assert: func(t *testing.T, f *fakeAdvisor, out map[string]any) {
				assert.Len(t, out["response"], len(model.TemplateGames))
			},
		},
		{
			name: "checkcompatibility",
			path: "/checkcompatibility",
			body: system,
			assert: func(t *testing.T, f *fakeAdvisor, out map[string]any) {
				assert.Equal(t, "H510", f.system.Case)
				assert.Equal(t, map[string]any{"compatibilityIssues": []any{}}, out["response"])
			},
		},
		{
			name: "ratepc",
			path: "/ratepc",
			body: system,
			assert: func(t *testing.T, f *fakeAdvisor, out map[string]any) {
				assert.Equal(t, "2TB", f.system.HDD)
				assert.Equal(t, map[string]any{"cpu": 8.0, "gpu": 9.0, "overall": 8.5}, out["response"])
			},
		},
		{
			name: "getassemblyguide answers under data",
			path: "/getassemblyguide",
			body: `{"pcParts":{"cpu":"Ryzen","gpu":"RTX 3060","ram":"16GB","motherboard":"B550","psu":"750W","case":"H510"}}`,
			assert: func(t *testing.T, f *fakeAdvisor, out map[string]any) {
				assert.NotContains(t, out, "response")
				assert.Contains(t, out["data"], "tools")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &fakeAdvisor{}
			rec, out := serve(t, f, tt.path, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, true, out["success"])
			assert.NotContains(t, out, "error")
			tt.assert(t, f, out)
		})
	}
}

func TestAdvisorFailureEnvelope(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: model.ErrNoJSONFound, want: "No valid JSON found in the AI response."},
		{err: model.ErrInvalidJSON, want: "Failed to parse AI response as JSON."},
		{err: model.ErrInvalidMotherboard, want: "AI suggested an invalid motherboard."},
		{err: model.ErrOracleTimeout, want: "AI request timed out."},
		{err: model.ErrOracleUnavailable, want: "AI service is unavailable."},
		{err: model.ErrPartNotFound, want: "Unknown error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()

			f := &fakeAdvisor{err: fmt.Errorf("advisor.service.GetPC: %w", tt.err)}
			rec, out := serve(t, f, "/getpc", `{"prompt":"x"}`)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, tt.want, out["error"])
			assert.NotContains(t, out, "response")
		})
	}
}

func TestAdvisorBadRequest(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		rec, out := serve(t, &fakeAdvisor{}, "/getpc", `{"prompt":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.EqualValues(t, http.StatusBadRequest, out["code"])
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()

		f := &fakeAdvisor{err: fmt.Errorf("advisor.service.GetPerformance: %w", model.ErrValidation)}
		rec, _ := serve(t, f, "/getperformance", `{"pcParts":{},"gameName":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
