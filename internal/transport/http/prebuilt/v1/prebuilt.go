package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/pcbuilder/internal/converter"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/internal/transport/http/render"
)

type PrebuiltService interface {
	Save(ctx context.Context, params model.SavePrebuiltParams) (*model.Prebuilt, error)
	ByEngineer(ctx context.Context, engineerID int64) ([]model.Prebuilt, error)
	All(ctx context.Context) ([]model.Prebuilt, error)
}

type handler struct {
	svc PrebuiltService
}

func NewPrebuiltHandler(service PrebuiltService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/engineer/prebuilt", h.SavePrebuilt)
	r.Get("/engineer/prebuilts", h.EngineerPrebuilts)
	r.Get("/engineer/prebuilts/all", h.AllPrebuilts)
}

func (h *handler) SavePrebuilt(w http.ResponseWriter, r *http.Request) {
	var req converter.SavePrebuiltRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.Save(r.Context(), converter.SavePrebuiltRequestToParams(req))
	if err != nil {
		mapError(w, r, err)
		return
	}

	status := http.StatusCreated
	if req.PrebuiltID != nil {
		status = http.StatusOK
	}
	render.JSON(w, r, status, converter.PrebuiltToResponse(*p))
}

func (h *handler) EngineerPrebuilts(w http.ResponseWriter, r *http.Request) {
	engineerID, err := strconv.ParseInt(r.URL.Query().Get("engineerId"), 10, 64)
	if err != nil {
		render.Error(w, r, http.StatusBadRequest, "invalid engineer id") // 400
		return
	}

	prebuilts, err := h.svc.ByEngineer(r.Context(), engineerID)
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, converter.PrebuiltsToResponse(prebuilts))
}

func (h *handler) AllPrebuilts(w http.ResponseWriter, r *http.Request) {
	prebuilts, err := h.svc.All(r.Context())
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, converter.PrebuiltsToResponse(prebuilts))
}

func mapError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		render.Error(w, r, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrPartNotFound), errors.Is(err, model.ErrPrebuiltNotFound):
		render.Error(w, r, http.StatusNotFound, err.Error()) // 404
	default:
		render.InternalError(w, r, err) // 500
	}
}
