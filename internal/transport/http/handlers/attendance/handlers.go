package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"restopos/internal/domain/attendance"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
	"restopos/internal/transport/http/shared"
)

type Handler struct {
	Attendance *attendance.Service
}

func NewHandler(attendanceSvc *attendance.Service) *Handler {
	return &Handler{Attendance: attendanceSvc}
}

type clockRequest struct {
	EmployeeID string `json:"employeeId"`
	At         string `json:"at,omitempty"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/clock-in", h.handleClockIn)
		r.Post("/clock-out", h.handleClockOut)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r)
	records, err := h.Attendance.ListByBranch(r.Context(), user.BranchID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClockIn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	payload, at, ok := h.decodeClock(w, r)
	if !ok {
		return
	}

	record, err := h.Attendance.ClockIn(r.Context(), user.BranchID, payload.EmployeeID, at)
	if errors.Is(err, attendance.ErrAlreadyClockedIn) {
		api.Fail(w, http.StatusConflict, "already_clocked_in", "employee already has a record for today", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clock_in_failed", "failed to clock in", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClockOut(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	payload, at, ok := h.decodeClock(w, r)
	if !ok {
		return
	}

	record, err := h.Attendance.ClockOut(r.Context(), payload.EmployeeID, at)
	if errors.Is(err, attendance.ErrNoOpenRecord) {
		api.Fail(w, http.StatusConflict, "no_open_record", "employee has no open record for today", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clock_out_failed", "failed to clock out", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) decodeClock(w http.ResponseWriter, r *http.Request) (clockRequest, time.Time, bool) {
	var payload clockRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return clockRequest{}, time.Time{}, false
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	at := time.Now()
	if payload.At != "" {
		parsed, err := time.Parse(time.RFC3339, payload.At)
		if err != nil {
			v.Add("at", "must be an RFC3339 timestamp")
		} else {
			at = parsed
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return clockRequest{}, time.Time{}, false
	}
	return payload, at, true
}
