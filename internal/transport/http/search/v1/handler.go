package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/you-humble/partexplorer/internal/converter"
	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/internal/service/session"
	"github.com/you-humble/partexplorer/platform/logger"
	partexplorerv1 "github.com/you-humble/partexplorer/pkg/api/partexplorer/v1"
)

const maxBodyBytes = 64 << 10

type SessionService interface {
	Create(ctx context.Context) (uuid.UUID, model.View)
	Get(ctx context.Context, id uuid.UUID) (session.View, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReferenceService interface {
	Companies(ctx context.Context) ([]model.ReferenceCompany, error)
	Brands(ctx context.Context) ([]model.ReferenceBrand, error)
	Cities(ctx context.Context) ([]string, error)
	States(ctx context.Context) ([]string, error)
}

type TrendingService interface {
	Top(ctx context.Context, limit int) []model.TrendingTerm
}

type handler struct {
	sessions  SessionService
	reference ReferenceService
	trending  TrendingService
}

func NewSearchHandler(sessions SessionService, reference ReferenceService, trending TrendingService) *handler {
	return &handler{
		sessions:  sessions,
		reference: reference,
		trending:  trending,
	}
}

// Routes returns the API router, meant to be mounted under /api/v1.
func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/sessions", h.CreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Use(h.sessionContext)

		r.Delete("/", h.DeleteSession)
		r.Get("/view", h.GetView)
		r.Post("/search", h.Search)
		r.Put("/page", h.SetPage)
		r.Put("/toggles", h.SetToggles)
		r.Post("/facets/toggle", h.ToggleFacet)
		r.Delete("/facets", h.ClearFacets)
		r.Post("/detail", h.OpenDetail)
		r.Delete("/detail", h.CloseDetail)
	})

	r.Get("/reference/companies", h.Companies)
	r.Get("/reference/brands", h.Brands)
	r.Get("/reference/cities", h.Cities)
	r.Get("/reference/states", h.States)

	r.Get("/searches/trending", h.Trending)

	return r
}

// ======= Sessions =======

func (h *handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, view := h.sessions.Create(r.Context())

	writeJSON(r.Context(), w, http.StatusCreated, partexplorerv1.SessionCreatedResponse{
		SessionID: id.String(),
		View:      converter.ViewToResponse(view),
	})
}

func (h *handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), sessionID(r)); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) GetView(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}

	writeView(r.Context(), w, view.View(), nil)
}

// ======= Search =======

func (h *handler) Search(w http.ResponseWriter, r *http.Request) {
	var req partexplorerv1.SearchRequest
	if !decode(w, r, &req) {
		return
	}

	in, err := converter.SearchRequestToInput(req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	view, ok := h.view(w, r)
	if !ok {
		return
	}

	// A dropped connection must not leave the view waiting in Loading.
	v, err := view.Search(context.WithoutCancel(r.Context()), in)
	writeView(r.Context(), w, v, err)
}

func (h *handler) SetPage(w http.ResponseWriter, r *http.Request) {
	var req partexplorerv1.PageRequest
	if !decode(w, r, &req) {
		return
	}

	view, ok := h.view(w, r)
	if !ok {
		return
	}

	v, err := view.SetPage(context.WithoutCancel(r.Context()), req.Page)
	writeView(r.Context(), w, v, err)
}

func (h *handler) SetToggles(w http.ResponseWriter, r *http.Request) {
	var req partexplorerv1.TogglesRequest
	if !decode(w, r, &req) {
		return
	}

	view, ok := h.view(w, r)
	if !ok {
		return
	}

	v, err := view.SetToggles(context.WithoutCancel(r.Context()), converter.TogglesRequestToModel(req))
	writeView(r.Context(), w, v, err)
}

// ======= Facets & detail =======

func (h *handler) ToggleFacet(w http.ResponseWriter, r *http.Request) {
	var req partexplorerv1.FacetToggleRequest
	if !decode(w, r, &req) {
		return
	}

	d, value, err := converter.FacetToggleRequestToModel(req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	view, ok := h.view(w, r)
	if !ok {
		return
	}

	v, err := view.ToggleFacet(d, value)
	writeView(r.Context(), w, v, err)
}

func (h *handler) ClearFacets(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}

	v, err := view.ClearFacets()
	writeView(r.Context(), w, v, err)
}

func (h *handler) OpenDetail(w http.ResponseWriter, r *http.Request) {
	var req partexplorerv1.DetailRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeError(r.Context(), w, fmt.Errorf("%w: product_id is required", model.ErrValidation))
		return
	}

	view, ok := h.view(w, r)
	if !ok {
		return
	}

	v, err := view.OpenDetail(req.ProductID)
	writeView(r.Context(), w, v, err)
}

func (h *handler) CloseDetail(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}

	v, err := view.CloseDetail()
	writeView(r.Context(), w, v, err)
}

// ======= Reference & trending =======

func (h *handler) Companies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.reference.Companies(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.CompaniesToResponse(companies))
}

func (h *handler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.reference.Brands(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.BrandsToResponse(brands))
}

func (h *handler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.reference.Cities(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.CitiesToResponse(cities))
}

func (h *handler) States(w http.ResponseWriter, r *http.Request) {
	states, err := h.reference.States(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.StatesToResponse(states))
}

func (h *handler) Trending(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(r.Context(), w, fmt.Errorf("%w: invalid limit %q", model.ErrValidation, raw))
			return
		}
		limit = n
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.TrendingToResponse(h.trending.Top(r.Context(), limit)))
}

// ======= helpers =======

func (h *handler) view(w http.ResponseWriter, r *http.Request) (session.View, bool) {
	view, err := h.sessions.Get(r.Context(), sessionID(r))
	if err != nil {
		writeError(r.Context(), w, err)
		return nil, false
	}
	return view, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(r.Context(), w, fmt.Errorf("%w: invalid request body: %v", model.ErrValidation, err))
		return false
	}
	return true
}

// writeView answers with the view even when the operation was rejected, so
// the client can redraw from the state the server actually holds.
func writeView(ctx context.Context, w http.ResponseWriter, v model.View, err error) {
	if err != nil {
		status := statusFromError(err)
		logResult(ctx, status, err)
		writeJSON(ctx, w, status, struct {
			partexplorerv1.ErrorResponse
			View partexplorerv1.View `json:"view"`
		}{
			ErrorResponse: partexplorerv1.ErrorResponse{Code: status, Message: err.Error()},
			View:          converter.ViewToResponse(v),
		})
		return
	}

	writeJSON(ctx, w, http.StatusOK, converter.ViewToResponse(v))
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)
	logResult(ctx, status, err)
	writeJSON(ctx, w, status, partexplorerv1.ErrorResponse{Code: status, Message: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "write response", logger.ErrorF(err))
	}
}

func logResult(ctx context.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", logger.Int("status", status), logger.ErrorF(err))
		return
	}
	logger.Debug(ctx, "request rejected", logger.Int("status", status), logger.ErrorF(err))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrPageOutOfRange):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrInvalidTransition):
		return http.StatusConflict // 409
	case errors.Is(err, model.ErrNetworkFailure),
		errors.Is(err, model.ErrMalformedResponse):
		return http.StatusBadGateway // 502
	case errors.Is(err, model.ErrServiceUnavailable):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
