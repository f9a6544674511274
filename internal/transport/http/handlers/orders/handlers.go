package ordershandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"restopos/internal/domain/orders"
	"restopos/internal/transport/http/api"
	"restopos/internal/transport/http/middleware"
	"restopos/internal/transport/http/shared"
)

type Handler struct {
	Orders *orders.Service
}

func NewHandler(ordersSvc *orders.Service) *Handler {
	return &Handler{Orders: ordersSvc}
}

type createRequest struct {
	OrderType string  `json:"orderType"`
	WaiterID  string  `json:"waiterId"`
	Tip       float64 `json:"tip"`
	Items     []struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type closeOrderRequest struct {
	PaymentType string  `json:"paymentType"`
	AmountPaid  float64 `json:"amountPaid"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{orderID}", h.handleGet)
		r.Patch("/{orderID}/status", h.handleStatus)
		r.Post("/{orderID}/close", h.handleClose)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r)
	list, err := h.Orders.List(r.Context(), user.BranchID, r.URL.Query().Get("status"), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "orders_list_failed", "failed to list orders", middleware.GetRequestID(r.Context()))
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

	order, err := h.Orders.Get(r.Context(), user.BranchID, chi.URLParam(r, "orderID"))
	if errors.Is(err, orders.ErrOrderNotFound) {
		api.Fail(w, http.StatusNotFound, "order_not_found", "order not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "order_get_failed", "failed to load order", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, order, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Enum("orderType", payload.OrderType,
		[]string{orders.TypeDineIn, orders.TypeTakeout, orders.TypeDelivery}, "must be dine_in, takeout or delivery")
	v.NonNegative("tip", payload.Tip)
	if len(payload.Items) == 0 {
		v.Add("items", "at least one item is required")
	}
	for _, item := range payload.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			v.Add("items", "each item needs a productId and a positive quantity")
			break
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	order := orders.Order{
		BranchID:  user.BranchID,
		OrderType: payload.OrderType,
		WaiterID:  payload.WaiterID,
		Tip:       payload.Tip,
	}
	for _, item := range payload.Items {
		order.Items = append(order.Items, orders.Item{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	created, err := h.Orders.Create(r.Context(), order)
	if errors.Is(err, orders.ErrUnknownProduct) {
		api.Fail(w, http.StatusBadRequest, "unknown_product", "order references an unknown product", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, orders.ErrNoItems) {
		api.Fail(w, http.StatusBadRequest, "no_items", "order needs at least one item", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "order_create_failed", "failed to create order", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload statusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Enum("status", payload.Status,
		[]string{orders.StatusPreparing, orders.StatusReady, orders.StatusDispatched, orders.StatusCancelled},
		"must be preparing, ready, dispatched or cancelled")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Orders.UpdateStatus(r.Context(), user.BranchID, chi.URLParam(r, "orderID"), payload.Status)
	if errors.Is(err, orders.ErrOrderNotFound) {
		api.Fail(w, http.StatusNotFound, "order_not_found", "order not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "order_status_failed", "failed to update order status", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": payload.Status}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload closeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	order, err := h.Orders.Close(r.Context(), user.BranchID, chi.URLParam(r, "orderID"), payload.PaymentType, user.UserID, payload.AmountPaid)
	if errors.Is(err, orders.ErrUnknownPaymentType) {
		api.Fail(w, http.StatusBadRequest, "unknown_payment_type", "payment type must be cash, card or transfer", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, orders.ErrOrderNotOpen) {
		api.Fail(w, http.StatusConflict, "order_not_open", "order is not open", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, orders.ErrOrderNotFound) {
		api.Fail(w, http.StatusNotFound, "order_not_found", "order not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "order_close_failed", "failed to close order", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, order, middleware.GetRequestID(r.Context()))
}
