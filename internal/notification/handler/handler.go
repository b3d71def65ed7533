package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/notification"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/server/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	uc     notification.UseCase
	logger logger.ZapLogger
}

func NewNotificationHandler(uc notification.UseCase, log logger.ZapLogger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: log}
}

func (h *NotificationHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/update", h.AckAll)
	return r
}

// AckAll flips every unseen notification of the caller's business to seen,
// independent of what the client actually rendered.
func (h *NotificationHandler) AckAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	if _, err := h.uc.AckAll(r.Context(), claims.BusinessID); err != nil {
		h.logger.Error("ack notifications", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to update notification.")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{})
}
