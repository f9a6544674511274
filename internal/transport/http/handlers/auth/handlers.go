package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"restopos/internal/auth"
	"restopos/internal/platform/db"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
)

type Handler struct {
	DB       db.Queryer
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(q db.Queryer, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{DB: q, Secret: secret, TokenTTL: tokenTTL}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userInfo `json:"user"`
}

type userInfo struct {
	ID       string `json:"id"`
	BranchID string `json:"branchId"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Get("/auth/me", h.handleMe)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	var user userInfo
	var hash string
	err := h.DB.QueryRow(r.Context(), `
    SELECT id, branch_id, name, username, role, password_hash
    FROM users
    WHERE username = $1 AND status = 'active'
  `, payload.Username).Scan(&user.ID, &user.BranchID, &user.Name, &user.Username, &user.Role, &hash)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	if err := auth.CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID:   user.ID,
		BranchID: user.BranchID,
		Role:     user.Role,
		Name:     user.Name,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, loginResponse{Token: token, User: user}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{
		"id":       user.UserID,
		"branchId": user.BranchID,
		"name":     user.Name,
		"role":     user.Role,
	}, middleware.GetRequestID(r.Context()))
}
