package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/inventory"
	"github.com/fekuna/omnipos-backoffice-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/server/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

func (h *InventoryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Post("/adjust", h.Adjust)
	return r
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	items, err := h.uc.ListInventory(r.Context(), claims.BusinessID)
	if err != nil {
		h.logger.Error("list inventory", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	var req dto.AddItemRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.IngredientName == "" || req.Category == "" || req.Location == "" || req.UnitID == 0 {
		response.Error(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	item, err := h.uc.AddItem(r.Context(), &dto.AddItemInput{
		BusinessID:     claims.BusinessID,
		UserID:         claims.UserID,
		IngredientName: req.IngredientName,
		Category:       req.Category,
		Quantity:       req.Quantity,
		UnitID:         req.UnitID,
		Cost:           req.Cost,
		Location:       req.Location,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		h.logger.Error("add inventory item", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to add ingredient.")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Ingredient added successfully!",
		"item":    item,
	})
}

func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	var req dto.AdjustQuantityRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.uc.AdjustQuantity(r.Context(), &dto.AdjustQuantityInput{
		BusinessID:     claims.BusinessID,
		InventoryID:    req.InventoryID,
		QuantityChange: req.QuantityChange,
		Reason:         req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrNotFound):
			response.Error(w, http.StatusNotFound, "Inventory item not found")
		case errors.Is(err, inventory.ErrInsufficientStock):
			response.Error(w, http.StatusBadRequest, "Insufficient inventory")
		default:
			h.logger.Error("adjust inventory", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	response.JSON(w, http.StatusOK, item)
}
