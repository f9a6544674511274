package shifthandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"restopos/internal/auth"
	"restopos/internal/domain/shift"
	"restopos/internal/platform/metrics"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
	"restopos/internal/transport/http/shared"
)

type Handler struct {
	Shift   *shift.Service
	Metrics *metrics.Collector
}

func NewHandler(shiftSvc *shift.Service, collector *metrics.Collector) *Handler {
	return &Handler{Shift: shiftSvc, Metrics: collector}
}

type closeRequest struct {
	DeclaredCash     float64 `json:"declaredCash"`
	DeclaredCard     float64 `json:"declaredCard"`
	DeclaredTransfer float64 `json:"declaredTransfer"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shift", func(r chi.Router) {
		r.Post("/close", h.handleClose)
		r.Get("/reports", h.handleReports)
		r.Get("/reports/{reportID}", h.handleReport)
	})
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload closeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.NonNegative("declaredCash", payload.DeclaredCash)
	v.NonNegative("declaredCard", payload.DeclaredCard)
	v.NonNegative("declaredTransfer", payload.DeclaredTransfer)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	report, err := h.Shift.CloseShift(r.Context(), user.BranchID, user.UserID, user.Name, shift.Totals{
		Cash:     payload.DeclaredCash,
		Card:     payload.DeclaredCard,
		Transfer: payload.DeclaredTransfer,
	}, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shift_close_failed", "failed to close shift", middleware.GetRequestID(r.Context()))
		return
	}
	h.Metrics.RecordShiftClose()
	api.Created(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReports(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanManage(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r)
	reports, err := h.Shift.Reports(r.Context(), user.BranchID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shift_reports_failed", "failed to list shift reports", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanManage(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", middleware.GetRequestID(r.Context()))
		return
	}

	report, err := h.Shift.Report(r.Context(), user.BranchID, chi.URLParam(r, "reportID"))
	if errors.Is(err, shift.ErrReportNotFound) {
		api.Fail(w, http.StatusNotFound, "report_not_found", "shift report not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shift_report_failed", "failed to load shift report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}
