package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/pos"
	"github.com/fekuna/omnipos-backoffice-service/internal/pos/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/server/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type PosHandler struct {
	uc     pos.UseCase
	logger logger.ZapLogger
}

func NewPosHandler(uc pos.UseCase, log logger.ZapLogger) *PosHandler {
	return &PosHandler{uc: uc, logger: log}
}

func (h *PosHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/create-transaction", h.CreateTransaction)
	r.Get("/orders", h.ListOrders)
	r.Patch("/orders/{orderId}/status", h.UpdateOrderStatus)
	return r
}

func (h *PosHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	var req dto.CreateTransactionInput
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.BusinessID = claims.BusinessID
	req.UserID = claims.UserID

	result, err := h.uc.CreateTransaction(r.Context(), &req)
	if err != nil {
		if errors.Is(err, pos.ErrEmptyOrder) {
			response.Error(w, http.StatusBadRequest, "Order cannot be empty.")
			return
		}
		h.logger.Error("create transaction failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *PosHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	orders, err := h.uc.ListOrders(r.Context(), claims.BusinessID)
	if err != nil {
		h.logger.Error("list orders failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, orders)
}

func (h *PosHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.uc.UpdateOrderStatus(r.Context(), orderID, claims.BusinessID, req.Status); err != nil {
		if errors.Is(err, pos.ErrOrderNotFound) {
			response.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("update order status failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Order status updated",
	})
}
