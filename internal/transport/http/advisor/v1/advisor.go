package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/transport/http/render"
)

type AdvisorService interface {
	GetPC(ctx context.Context, userPrompt string, opts model.GetPCOptions) (*model.ResolvedBuild, error)
	GetPerformance(ctx context.Context, parts model.GamingParts, game string) (*model.Performance, error)
	GetTemplateGraph(ctx context.Context, parts model.GamingParts) (model.PerformanceGrid, error)
	CheckCompatibility(ctx context.Context, system model.SystemSpec) (*model.CompatibilityReport, error)
	RatePC(ctx context.Context, system model.SystemSpec) (*model.Rating, error)
	GetAssemblyGuideAndImages(ctx context.Context, parts model.AssemblyParts) (*model.AssemblyGuide, error)
}

type getPCRequest struct {
	Prompt                string `json:"prompt"`
	PrioritizePerformance bool   `json:"prioritizePerformance"`
}

type performanceRequest struct {
	PCParts  model.GamingParts `json:"pcParts"`
	GameName string            `json:"gameName"`
}

type templateGraphRequest struct {
	PCParts model.GamingParts `json:"pcParts"`
}

type assemblyGuideRequest struct {
	PCParts model.AssemblyParts `json:"pcParts"`
}

// envelope is the uniform AI response body. The assembly guide answers under data.
type envelope struct {
	Success  bool   `json:"success"`
	Response any    `json:"response,omitempty"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
}

type handler struct {
	svc AdvisorService
}

func NewAdvisorHandler(service AdvisorService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/getpc", h.GetPC)
	r.Post("/getperformance", h.GetPerformance)
	r.Post("/templategraph", h.GetTemplateGraph)
	r.Post("/templagegraph", h.GetTemplateGraph)
	r.Post("/checkcompatibility", h.CheckCompatibility)
	r.Post("/ratepc", h.RatePC)
	r.Post("/getassemblyguide", h.GetAssemblyGuide)
}

func (h *handler) GetPC(w http.ResponseWriter, r *http.Request) {
	var req getPCRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.GetPC(r.Context(), req.Prompt, model.GetPCOptions{
		PrioritizePerformance: req.PrioritizePerformance,
	})
	respond(w, r, res, err)
}

func (h *handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	var req performanceRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.GetPerformance(r.Context(), req.PCParts, req.GameName)
	respond(w, r, res, err)
}

func (h *handler) GetTemplateGraph(w http.ResponseWriter, r *http.Request) {
	var req templateGraphRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.GetTemplateGraph(r.Context(), req.PCParts)
	respond(w, r, res, err)
}

func (h *handler) CheckCompatibility(w http.ResponseWriter, r *http.Request) {
	var req model.SystemSpec
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.CheckCompatibility(r.Context(), req)
	respond(w, r, res, err)
}

func (h *handler) RatePC(w http.ResponseWriter, r *http.Request) {
	var req model.SystemSpec
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.RatePC(r.Context(), req)
	respond(w, r, res, err)
}

func (h *handler) GetAssemblyGuide(w http.ResponseWriter, r *http.Request) {
	var req assemblyGuideRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.GetAssemblyGuideAndImages(r.Context(), req.PCParts)
	if err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, envelope{Success: true, Data: res})
}

func respond(w http.ResponseWriter, r *http.Request, res any, err error) {
	if err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, envelope{Success: true, Response: res})
}

// fail answers 400 for invalid input and 200 with the failure envelope otherwise.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrValidation) {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	render.JSON(w, r, http.StatusOK, envelope{Success: false, Error: mapError(err)})
}

func mapError(err error) string {
	switch {
	case errors.Is(err, model.ErrNoJSONFound):
		return "No valid JSON found in the AI response."
	case errors.Is(err, model.ErrInvalidJSON):
		return "Failed to parse AI response as JSON."
	case errors.Is(err, model.ErrInvalidMotherboard):
		return "AI suggested an invalid motherboard."
	case errors.Is(err, model.ErrOracleTimeout):
		return "AI request timed out."
	case errors.Is(err, model.ErrOracleUnavailable):
		return "AI service is unavailable."
	default:
		return "Unknown error occurred"
	}
}
