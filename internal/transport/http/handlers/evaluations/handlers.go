package evaluationshandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"evalhub/internal/domain/evaluation"
	"evalhub/internal/transport/http/api"
	"evalhub/internal/transport/http/middleware"
	"evalhub/internal/transport/http/shared"
)

type Handler struct {
	Service *evaluation.Service
	Weights evaluation.WeightConfig
}

func NewHandler(service *evaluation.Service, weights evaluation.WeightConfig) *Handler {
	return &Handler{Service: service, Weights: weights}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluations", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", h.handleList)
		r.Get("/annual-composite", h.handleAnnualComposite)
		r.Get("/{evaluationID}", h.handleGet)
	})
}

// handleList returns the caller's own evaluations with display status
// re-derived from the date window.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	subjectID := user.MemberID
	if override := r.URL.Query().Get("subjectId"); override != "" && (user.Roles.IsHeadquarterAdmin || user.Roles.IsSuperAdmin) {
		subjectID = override
	}
	if subjectID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_subject", "no evaluation subject for caller", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	evals, err := h.Service.List(r.Context(), subjectID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_list_failed", "failed to list evaluations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evals, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	eval, err := h.Service.Get(r.Context(), chi.URLParam(r, "evaluationID"))
	if errors.Is(err, evaluation.ErrEvaluationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "evaluation_get_failed", "failed to load evaluation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, eval, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAnnualComposite(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	subjectID := user.MemberID
	if override := r.URL.Query().Get("subjectId"); override != "" && (user.Roles.IsHeadquarterAdmin || user.Roles.IsSuperAdmin) {
		subjectID = override
	}

	validator := shared.NewValidator()
	validator.Required("subjectId", subjectID, "no evaluation subject for caller")
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2999 {
		validator.Add("year", "must be a four-digit year")
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	composite, err := h.Service.AnnualComposite(r.Context(), subjectID, year, h.Weights)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "composite_failed", "failed to compute annual composite", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, composite, middleware.GetRequestID(r.Context()))
}
