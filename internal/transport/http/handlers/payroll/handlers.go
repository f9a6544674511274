package payrollhandler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"restopos/internal/auth"
	"restopos/internal/domain/audit"
	"restopos/internal/domain/payroll"
	"restopos/internal/domain/staff"
	"restopos/internal/platform/metrics"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
	"restopos/internal/transport/http/shared"
)

type Handler struct {
	Payroll    *payroll.Service
	Staff      *staff.Service
	Audit      *audit.Service
	PayslipDir string
	Metrics    *metrics.Collector
}

func NewHandler(payrollSvc *payroll.Service, staffSvc *staff.Service, auditSvc *audit.Service, payslipDir string, collector *metrics.Collector) *Handler {
	return &Handler{Payroll: payrollSvc, Staff: staffSvc, Audit: auditSvc, PayslipDir: payslipDir, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/employees/{employeeID}/preview", h.handlePreview)
		r.Post("/employees/{employeeID}/run", h.handleRun)
		r.Get("/employees/{employeeID}/payments", h.handlePayments)
		r.Get("/payments/{paymentID}/payslip", h.handlePayslip)
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

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	user, ok := h.manager(w, r)
	if !ok {
		return
	}

	settlement, err := h.Payroll.Preview(r.Context(), user.BranchID, chi.URLParam(r, "employeeID"), time.Now())
	if errors.Is(err, staff.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_preview_failed", "failed to compute settlement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, settlement, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	user, ok := h.manager(w, r)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	payment, err := h.Payroll.RunPayroll(r.Context(), user.BranchID, employeeID, time.Now())
	if errors.Is(err, staff.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, payroll.ErrAlreadyPaid) {
		api.Fail(w, http.StatusConflict, "already_paid", "employee already settled for this period", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "failed to run payroll", middleware.GetRequestID(r.Context()))
		return
	}

	h.Metrics.RecordSettlementRun()
	h.Audit.Record(r.Context(), user.BranchID, user.UserID, user.Name, "payroll.run", "payroll",
		fmt.Sprintf("employee %s period %s amount %.2f", employeeID, payment.Period, payment.Amount))
	api.Created(w, payment, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayments(w http.ResponseWriter, r *http.Request) {
	_, ok := h.manager(w, r)
	if !ok {
		return
	}

	page := shared.ParsePagination(r)
	payments, err := h.Payroll.Payments(r.Context(), chi.URLParam(r, "employeeID"), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_payments_failed", "failed to list payments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	user, ok := h.manager(w, r)
	if !ok {
		return
	}

	payment, err := h.Payroll.Payment(r.Context(), user.BranchID, chi.URLParam(r, "paymentID"))
	if errors.Is(err, payroll.ErrPaymentNotFound) {
		api.Fail(w, http.StatusNotFound, "payment_not_found", "payment not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to load payment", middleware.GetRequestID(r.Context()))
		return
	}

	employee, err := h.Staff.Get(r.Context(), user.BranchID, payment.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}

	filePath, err := payroll.WritePayslipPDF(h.PayslipDir, payment, employee.Name, user.BranchID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", middleware.GetRequestID(r.Context()))
		return
	}
	defer os.Remove(filePath)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", payment.Period))
	http.ServeFile(w, r, filePath)
}
