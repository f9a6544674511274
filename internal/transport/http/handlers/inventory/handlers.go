package inventoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"restopos/internal/auth"
	"restopos/internal/domain/inventory"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
	"restopos/internal/transport/http/shared"
)

type Handler struct {
	Inventory *inventory.Service
}

func NewHandler(inventorySvc *inventory.Service) *Handler {
	return &Handler{Inventory: inventorySvc}
}

type adjustRequest struct {
	Delta float64 `json:"delta"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/ingredients", h.handleListIngredients)
		r.Post("/ingredients", h.handleCreateIngredient)
		r.Put("/ingredients/{ingredientID}", h.handleUpdateIngredient)
		r.Post("/ingredients/{ingredientID}/adjust", h.handleAdjustStock)
		r.Get("/low-stock", h.handleLowStock)
	})
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.handleListProducts)
		r.Post("/", h.handleCreateProduct)
		r.Get("/{productID}", h.handleGetProduct)
		r.Get("/{productID}/cost", h.handleProductCost)
	})
}

func (h *Handler) handleListIngredients(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	list, err := h.Inventory.Ingredients(r.Context(), user.BranchID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "ingredients_list_failed", "failed to list ingredients", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateIngredient(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanManage(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload inventory.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("unit", payload.Unit, "unit is required")
	v.NonNegative("stock", payload.Stock)
	v.NonNegative("minStock", payload.MinStock)
	v.NonNegative("cost", payload.Cost)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	payload.BranchID = user.BranchID
	created, err := h.Inventory.CreateIngredient(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "ingredient_create_failed", "failed to create ingredient", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateIngredient(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanManage(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload inventory.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "ingredientID")
	payload.BranchID = user.BranchID

	err := h.Inventory.UpdateIngredient(r.Context(), payload)
	if errors.Is(err, inventory.ErrIngredientNotFound) {
		api.Fail(w, http.StatusNotFound, "ingredient_not_found", "ingredient not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "ingredient_update_failed", "failed to update ingredient", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAdjustStock(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Inventory.AdjustStock(r.Context(), user.BranchID, chi.URLParam(r, "ingredientID"), payload.Delta)
	if errors.Is(err, inventory.ErrIngredientNotFound) {
		api.Fail(w, http.StatusNotFound, "ingredient_not_found", "ingredient not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "stock_adjust_failed", "failed to adjust stock", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]float64{"delta": payload.Delta}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLowStock(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	list, err := h.Inventory.LowStock(r.Context(), user.BranchID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "low_stock_failed", "failed to list low stock", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	list, err := h.Inventory.Products(r.Context(), user.BranchID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "products_list_failed", "failed to list products", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.CanManage(user.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "manager role required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload inventory.Product
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.NonNegative("price", payload.Price)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	payload.BranchID = user.BranchID
	created, err := h.Inventory.CreateProduct(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "product_create_failed", "failed to create product", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	product, err := h.Inventory.Product(r.Context(), user.BranchID, chi.URLParam(r, "productID"))
	if errors.Is(err, inventory.ErrProductNotFound) {
		api.Fail(w, http.StatusNotFound, "product_not_found", "product not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "product_get_failed", "failed to load product", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, product, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProductCost(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	cost, err := h.Inventory.ProductCost(r.Context(), user.BranchID, chi.URLParam(r, "productID"))
	if errors.Is(err, inventory.ErrProductNotFound) {
		api.Fail(w, http.StatusNotFound, "product_not_found", "product not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "product_cost_failed", "failed to compute product cost", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]float64{"cost": cost}, middleware.GetRequestID(r.Context()))
}
