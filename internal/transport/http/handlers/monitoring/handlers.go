package monitoringhandler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"evalhub/internal/domain/adjustment"
	"evalhub/internal/domain/audit"
	"evalhub/internal/domain/evaluation"
	"evalhub/internal/domain/monitoring"
	"evalhub/internal/domain/reminder"
	"evalhub/internal/platform/metrics"
	"evalhub/internal/transport/http/api"
	"evalhub/internal/transport/http/middleware"
	"evalhub/internal/transport/http/shared"
)

type Handler struct {
	Monitoring  *monitoring.Service
	Adjustments *adjustment.Service
	Reminders   reminder.Transport
	Audit       *audit.Service
	Metrics     *metrics.Collector
	Idempotency middleware.IdempotencyAPI

	// DefaultThreshold applies when the request does not override it.
	DefaultThreshold *float64
}

func NewHandler(monitoringSvc *monitoring.Service, adjustments *adjustment.Service, reminders reminder.Transport, auditSvc *audit.Service, collector *metrics.Collector, idempotency middleware.IdempotencyAPI, defaultThreshold *float64) *Handler {
	return &Handler{
		Monitoring:       monitoringSvc,
		Adjustments:      adjustments,
		Reminders:        reminders,
		Audit:            auditSvc,
		Metrics:          collector,
		Idempotency:      idempotency,
		DefaultThreshold: defaultThreshold,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluations/{evaluationID}", func(r chi.Router) {
		r.With(middleware.RequireTeamAdmin).Get("/monitoring", h.handleDashboard)
		r.With(middleware.RequireTeamAdmin).Get("/monitoring/export", h.handleExport)
		r.With(middleware.RequireTeamAdmin).Get("/evaluatees/{evaluateeID}", h.handleEvaluateeDetail)
		r.With(middleware.RequireAdjustmentLayer(adjustment.RoleManager)).
			Post("/evaluatees/{evaluateeID}/adjustments/manager", h.saveAdjustment(adjustment.RoleManager))
		r.With(middleware.RequireAdjustmentLayer(adjustment.RoleHQ)).
			Post("/evaluatees/{evaluateeID}/adjustments/hq", h.saveAdjustment(adjustment.RoleHQ))
		r.With(middleware.RequireTeamAdmin).Post("/reminders", h.handleSendReminders)
	})
}

func (h *Handler) viewQuery(r *http.Request, validator *shared.Validator) monitoring.ViewQuery {
	query := monitoring.ViewQuery{
		Filter:            r.URL.Query().Get("filter"),
		SortKey:           r.URL.Query().Get("sort"),
		LowScoreThreshold: h.DefaultThreshold,
	}
	if query.Filter == "" {
		query.Filter = monitoring.FilterAll
	}
	if query.SortKey == "" {
		query.SortKey = monitoring.SortName
	}
	validator.Enum("filter", query.Filter,
		[]string{monitoring.FilterAll, monitoring.FilterComplete, monitoring.FilterIncomplete},
		"must be one of all, complete, incomplete")
	validator.Enum("sort", query.SortKey,
		[]string{monitoring.SortName, monitoring.SortSubmissionDesc, monitoring.SortScoreDesc, monitoring.SortScoreAsc},
		"must be one of name, submission_desc, score_desc, score_asc")

	if raw := r.URL.Query().Get("threshold"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			validator.Add("threshold", "must be a number")
		} else {
			query.LowScoreThreshold = &threshold
		}
	}
	return query
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	validator := shared.NewValidator()
	query := h.viewQuery(r, validator)
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	rows, err := h.Monitoring.Dashboard(r.Context(), chi.URLParam(r, "evaluationID"), query)
	if err != nil {
		failForError(w, r, err, "dashboard_failed", "failed to build monitoring view")
		return
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	validator := shared.NewValidator()
	query := h.viewQuery(r, validator)
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	evaluationID := chi.URLParam(r, "evaluationID")
	eval, err := h.Monitoring.Evaluations.Get(r.Context(), evaluationID)
	if err != nil {
		failForError(w, r, err, "export_failed", "failed to load evaluation")
		return
	}
	rows, err := h.Monitoring.Dashboard(r.Context(), evaluationID, query)
	if err != nil {
		failForError(w, r, err, "export_failed", "failed to build monitoring view")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="monitoring-report.pdf"`)
	if err := monitoring.WritePDF(w, eval.Name, rows); err != nil {
		slog.Warn("monitoring pdf write failed", "err", err)
	}
}

func (h *Handler) handleEvaluateeDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Monitoring.Detail(r.Context(), chi.URLParam(r, "evaluationID"), chi.URLParam(r, "evaluateeID"))
	if err != nil {
		failForError(w, r, err, "detail_failed", "failed to load evaluatee detail")
		return
	}
	api.Success(w, detail, middleware.GetRequestID(r.Context()))
}

func (h *Handler) saveAdjustment(role string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := middleware.GetUser(r.Context())
		evaluationID := chi.URLParam(r, "evaluationID")
		evaluateeID := chi.URLParam(r, "evaluateeID")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
			return
		}

		var payload struct {
			Value float64 `json:"value"`
			Note  string  `json:"note"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
			return
		}

		idempotencyKey := r.Header.Get("Idempotency-Key")
		requestHash := ""
		if idempotencyKey != "" && h.Idempotency != nil {
			requestHash = middleware.RequestHash(body)
			stored, found, err := h.Idempotency.Check(r.Context(), user.UserID, r.URL.Path, idempotencyKey, requestHash)
			if errors.Is(err, middleware.ErrIdempotencyConflict) {
				api.Fail(w, http.StatusConflict, "idempotency_conflict", "idempotency key was already used with a different payload", middleware.GetRequestID(r.Context()))
				return
			}
			if err != nil {
				api.Fail(w, http.StatusInternalServerError, "idempotency_failed", "failed to check idempotency key", middleware.GetRequestID(r.Context()))
				return
			}
			if found {
				api.Created(w, json.RawMessage(stored), middleware.GetRequestID(r.Context()))
				return
			}
		}

		detail, err := h.Monitoring.Detail(r.Context(), evaluationID, evaluateeID)
		if err != nil {
			failForError(w, r, err, "adjustment_failed", "failed to load evaluatee summary")
			return
		}

		decision := detail.ManagerDecision
		if role == adjustment.RoleHQ {
			decision = detail.HQDecision
		}
		if !decision.Allowed {
			api.FailWithDetails(w, http.StatusConflict, "adjustment_not_allowed", "adjustment layer is closed",
				map[string]any{"reason": decision.Reason}, middleware.GetRequestID(r.Context()))
			return
		}

		saved := adjustment.Adjustment{
			EvaluationID: evaluationID,
			EvaluateeID:  evaluateeID,
			Role:         role,
			Value:        payload.Value,
			Note:         payload.Note,
			AdjustedBy:   user.UserID,
		}
		if err := h.Adjustments.Save(r.Context(), saved); err != nil {
			if errors.Is(err, adjustment.ErrValueOutOfRange) {
				shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{
					{Field: "value", Reason: "outside the configured adjustment range"},
				})
				return
			}
			api.Fail(w, http.StatusInternalServerError, "adjustment_failed", "failed to save adjustment", middleware.GetRequestID(r.Context()))
			return
		}

		if err := h.Audit.Record(r.Context(), user.UserID, "adjustment.save", "adjustment", evaluateeID,
			middleware.GetRequestID(r.Context()), detail.Summary, saved); err != nil {
			slog.Warn("adjustment audit failed", "err", err)
		}

		response := map[string]any{"saved": saved}
		if detail.Summary.BaseScore != nil {
			response["preview"] = map[string]any{
				"adjustedScore": adjustment.PreviewAdjustment(*detail.Summary.BaseScore, payload.Value),
			}
		}

		if idempotencyKey != "" && h.Idempotency != nil {
			if responseJSON, err := json.Marshal(response); err == nil {
				if err := h.Idempotency.Save(r.Context(), user.UserID, r.URL.Path, idempotencyKey, requestHash, responseJSON); err != nil {
					slog.Warn("idempotency save failed", "err", err)
				}
			}
		}
		api.Created(w, response, middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleSendReminders(w http.ResponseWriter, r *http.Request) {
	evaluationID := chi.URLParam(r, "evaluationID")
	participants, err := h.Monitoring.Campaigns.PendingEvaluators(r.Context(), evaluationID)
	if err != nil {
		failForError(w, r, err, "reminder_failed", "failed to resolve pending evaluators")
		return
	}

	state := reminder.SendSuccess
	if len(participants) > 0 {
		state = h.Reminders.Notify(r.Context(), participants)
		if h.Metrics != nil {
			h.Metrics.RecordReminder(state == reminder.SendSuccess)
		}
	}
	api.Success(w, map[string]any{
		"state":        state,
		"participants": len(participants),
	}, middleware.GetRequestID(r.Context()))
}

func failForError(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	if errors.Is(err, evaluation.ErrEvaluationNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "evaluation not found", middleware.GetRequestID(r.Context()))
		return
	}
	slog.Warn(message, "err", err)
	api.Fail(w, http.StatusInternalServerError, code, message, middleware.GetRequestID(r.Context()))
}
