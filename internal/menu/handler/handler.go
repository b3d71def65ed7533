package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/menu"
	"github.com/fekuna/omnipos-backoffice-service/internal/menu/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/server/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type MenuHandler struct {
	uc     menu.UseCase
	logger logger.ZapLogger
}

func NewMenuHandler(uc menu.UseCase, log logger.ZapLogger) *MenuHandler {
	return &MenuHandler{uc: uc, logger: log}
}

func (h *MenuHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListMenuItems)
	r.Post("/add", h.AddMenuItem)
	r.Post("/category", h.CreateCategory)
	r.Get("/categories", h.ListCategories)
	return r
}

func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	var req dto.CreateCategoryInput
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.BusinessID = claims.BusinessID
	req.UserID = claims.UserID

	category, err := h.uc.CreateCategory(r.Context(), &req)
	if err != nil {
		if errors.Is(err, menu.ErrMissingFields) {
			response.Error(w, http.StatusBadRequest, "Name is required.")
			return
		}
		h.logger.Error("create category failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to create category.")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Category created successfully.",
		"category": category,
	})
}

func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	categories, err := h.uc.ListCategories(r.Context(), claims.BusinessID)
	if err != nil {
		h.logger.Error("list categories failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

func (h *MenuHandler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	var req dto.AddMenuItemInput
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.BusinessID = claims.BusinessID
	req.UserID = claims.UserID

	item, err := h.uc.AddMenuItem(r.Context(), &req)
	if err != nil {
		if errors.Is(err, menu.ErrMissingFields) {
			response.Error(w, http.StatusBadRequest, "All fields are required.")
			return
		}
		h.logger.Error("add menu item failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to add menu item.")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Menu item created successfully!",
		"menu_item": item,
	})
}

func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	items, err := h.uc.ListMenuItems(r.Context(), claims.BusinessID)
	if err != nil {
		h.logger.Error("list menu items failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch menu.")
		return
	}

	response.JSON(w, http.StatusOK, items)
}
