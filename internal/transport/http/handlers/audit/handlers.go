package audithandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"restopos/internal/auth"
	"restopos/internal/domain/audit"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
	"restopos/internal/transport/http/shared"
)

type Handler struct {
	Audit *audit.Service
}

func NewHandler(auditSvc *audit.Service) *Handler {
	return &Handler{Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/audit", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
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
	filter := audit.Filter{
		Module: r.URL.Query().Get("module"),
		Action: r.URL.Query().Get("action"),
		UserID: r.URL.Query().Get("userId"),
	}
	entries, err := h.Audit.List(r.Context(), user.BranchID, filter, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_list_failed", "failed to list audit log", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}
