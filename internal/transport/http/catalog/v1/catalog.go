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

type CatalogService interface {
	ListAll(ctx context.Context) (model.CatalogListing, error)
	PartDetails(ctx context.Context, parts model.BuildParts) (*model.ResolvedBuild, error)
	TotalPrice(ctx context.Context, parts model.BuildParts) (float64, error)
	Games(ctx context.Context, q model.GameQuery) (*model.GamePage, error)
}

type priceResponse struct {
	TotalPrice float64 `json:"totalPrice"`
}

type handler struct {
	svc CatalogService
}

func NewCatalogHandler(service CatalogService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/parts", h.ListParts)
	r.Post("/parts/details", h.PartDetails)
	r.Post("/parts/price", h.TotalPrice)
	r.Get("/games", h.Games)
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListAll(r.Context())
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, converter.ListingToResponse(listing))
}

func (h *handler) PartDetails(w http.ResponseWriter, r *http.Request) {
	var req converter.PartIDsRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.PartDetails(r.Context(), converter.PartIDsToModel(req))
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, res)
}

func (h *handler) TotalPrice(w http.ResponseWriter, r *http.Request) {
	var req converter.PartIDsRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	total, err := h.svc.TotalPrice(r.Context(), converter.PartIDsToModel(req))
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, priceResponse{TotalPrice: total})
}

func (h *handler) Games(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := intParam(query.Get("page"))
	if err != nil {
		render.Error(w, r, http.StatusBadRequest, "invalid page") // 400
		return
	}
	limit, err := intParam(query.Get("limit"))
	if err != nil {
		render.Error(w, r, http.StatusBadRequest, "invalid limit") // 400
		return
	}

	res, err := h.svc.Games(r.Context(), model.GameQuery{
		Search: query.Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		mapError(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, converter.GamePageToResponse(*res))
}

// intParam parses an optional query value; absent means zero.
func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func mapError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		render.Error(w, r, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrPartNotFound):
		render.Error(w, r, http.StatusNotFound, err.Error()) // 404
	default:
		render.InternalError(w, r, err) // 500
	}
}
