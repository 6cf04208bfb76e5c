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

type BuildService interface {
	Save(ctx context.Context, params model.SaveBuildParams) (*model.Build, error)
	UserBuilds(ctx context.Context, userID int64) ([]model.Build, error)
}

type handler struct {
	svc BuildService
}

func NewBuildHandler(service BuildService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/build", h.SaveBuild)
	r.Get("/user/{userID}/pc", h.UserBuilds)
}

func (h *handler) SaveBuild(w http.ResponseWriter, r *http.Request) {
	var req converter.SaveBuildRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.svc.Save(r.Context(), converter.SaveBuildRequestToParams(req))
	if err != nil {
		mapError(w, r, err)
		return
	}

	status := http.StatusCreated
	if req.BuildID != nil {
		status = http.StatusOK
	}
	render.JSON(w, r, status, converter.BuildToResponse(*b))
}

func (h *handler) UserBuilds(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		render.Error(w, r, http.StatusBadRequest, "invalid user id") // 400
		return
	}

	builds, err := h.svc.UserBuilds(r.Context(), userID)
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, converter.BuildsToResponse(builds))
}

func mapError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		render.Error(w, r, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrPartNotFound), errors.Is(err, model.ErrBuildNotFound):
		render.Error(w, r, http.StatusNotFound, err.Error()) // 404
	default:
		render.InternalError(w, r, err) // 500
	}
}
