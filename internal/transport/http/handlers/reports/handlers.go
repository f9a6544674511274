package reportshandler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"restopos/internal/auth"
	"restopos/internal/domain/reports"
	"restopos/internal/domain/shift"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
	"restopos/internal/transport/http/shared"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(reportsSvc *reports.Service) *Handler {
	return &Handler{Reports: reportsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/sales/daily", h.handleDailySales)
		r.Get("/products/top", h.handleTopProducts)
		r.Get("/payroll/outlay", h.handlePayrollOutlay)
		r.Get("/payroll/register", h.handlePayrollRegister)
		r.Get("/shift/{reportID}/pdf", h.handleShiftPDF)
	})
}

func (h *Handler) manager(w http.ResponseWriter, r *http.Request) (auth.UserContext, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return auth.UserContext{}, false
	}
	if !auth.CanManage(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", middleware.GetRequestID(r.Context()))
		return auth.UserContext{}, false
	}
	return user, true
}

// dateRange reads from/to query params, defaulting both to today.
func dateRange(r *http.Request) (string, string) {
	today := shared.DayKey(time.Now())
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" {
		from = today
	}
	if to == "" {
		to = today
	}
	return from, to
}

func (h *Handler) handleDailySales(w http.ResponseWriter, r *http.Request) {
	user, ok := h.manager(w, r)
	if !ok {
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = shared.DayKey(time.Now())
	}
	summary, err := h.Reports.DailySales(r.Context(), user.BranchID, date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "sales_report_failed", "failed to build sales summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTopProducts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.manager(w, r)
	if !ok {
		return
	}

	from, to := dateRange(r)
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	top, err := h.Reports.TopProducts(r.Context(), user.BranchID, from, to, limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "top_products_failed", "failed to list top products", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, top, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayrollOutlay(w http.ResponseWriter, r *http.Request) {
	user, ok := h.manager(w, r)
	if !ok {
		return
	}

	from, to := dateRange(r)
	total, err := h.Reports.PayrollOutlay(r.Context(), user.BranchID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_outlay_failed", "failed to total payroll outlay", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"from": from, "to": to, "total": total}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayrollRegister(w http.ResponseWriter, r *http.Request) {
	user, ok := h.manager(w, r)
	if !ok {
		return
	}

	from, to := dateRange(r)
	buf, err := h.Reports.PayrollRegister(r.Context(), user.BranchID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_export_failed", "failed to export payroll register", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-%s-%s.xlsx", from, to))
	if _, err := buf.WriteTo(w); err != nil {
		return
	}
}

func (h *Handler) handleShiftPDF(w http.ResponseWriter, r *http.Request) {
	user, ok := h.manager(w, r)
	if !ok {
		return
	}

	reportID := chi.URLParam(r, "reportID")
	buf, err := h.Reports.ShiftReportPDF(r.Context(), user.BranchID, reportID)
	if errors.Is(err, shift.ErrReportNotFound) {
		api.Fail(w, http.StatusNotFound, "report_not_found", "shift report not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shift_pdf_failed", "failed to render shift report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=shift-%s.pdf", reportID))
	if _, err := buf.WriteTo(w); err != nil {
		return
	}
}
