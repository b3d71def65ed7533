package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/business"
	"github.com/fekuna/omnipos-backoffice-service/internal/business/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/server/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type BusinessHandler struct {
	uc     business.UseCase
	logger logger.ZapLogger
}

func NewBusinessHandler(uc business.UseCase, log logger.ZapLogger) *BusinessHandler {
	return &BusinessHandler{uc: uc, logger: log}
}

func (h *BusinessHandler) Routes(tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.Authenticate(tm), auth.RequireRoles("superadmin"))
	r.Post("/onboard-business", h.Onboard)
	r.Get("/businesses", h.List)
	r.Patch("/businesses/{id}/status", h.UpdateStatus)
	return r
}

func (h *BusinessHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req dto.OnboardInput
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.uc.Onboard(r.Context(), &req)
	if err != nil {
		h.logger.Error("onboard business failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to onboard business.")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Business onboarded successfully.",
		"business": b,
	})
}

func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("list businesses failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch businesses")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"businesses": businesses,
	})
}

func (h *BusinessHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid business id")
		return
	}

	var req dto.UpdateStatusRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.uc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, business.ErrInvalidStatus):
			response.Error(w, http.StatusBadRequest, "Invalid business status")
		case errors.Is(err, business.ErrNotFound):
			response.Error(w, http.StatusNotFound, "Business not found")
		default:
			h.logger.Error("update business status failed", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "Failed to update business status")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Business status updated successfully.",
	})
}
