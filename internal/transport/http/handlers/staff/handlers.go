package staffhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"restopos/internal/auth"
	"restopos/internal/domain/audit"
	"restopos/internal/domain/staff"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
	"restopos/internal/transport/http/shared"
)

type Handler struct {
	Staff *staff.Service
	Audit *audit.Service
}

func NewHandler(staffSvc *staff.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Staff: staffSvc, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/staff", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r)
	list, err := h.Staff.List(r.Context(), user.BranchID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_list_failed", "failed to list staff", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employee, err := h.Staff.Get(r.Context(), user.BranchID, chi.URLParam(r, "employeeID"))
	if errors.Is(err, staff.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanManage(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload staff.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("role", payload.Role, "role is required")
	v.Enum("policy.paymentType", payload.Policy.PaymentType,
		[]string{staff.PaymentTypeHourly, staff.PaymentTypeDaily}, "must be hourly or daily")
	v.NonNegative("policy.hourlyRate", payload.Policy.HourlyRate)
	v.NonNegative("policy.dailyRate", payload.Policy.DailyRate)
	v.NonNegative("policy.monthlyBenefits", payload.Policy.MonthlyBenefits)
	v.NonNegative("policy.latePenalty", payload.Policy.LatePenalty)
	v.NonNegative("policy.absencePenalty", payload.Policy.AbsencePenalty)
	if payload.HireDate != "" {
		v.Date("hireDate", payload.HireDate)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	payload.BranchID = user.BranchID
	employee, err := h.Staff.Create(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}

	h.Audit.Record(r.Context(), user.BranchID, user.UserID, user.Name, "staff.create", "staff", employee.ID)
	api.Created(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanManage(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload staff.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "employeeID")
	payload.BranchID = user.BranchID

	err := h.Staff.Update(r.Context(), payload)
	if errors.Is(err, staff.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		return
	}

	h.Audit.Record(r.Context(), user.BranchID, user.UserID, user.Name, "staff.update", "staff", payload.ID)
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}
