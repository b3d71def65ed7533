package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/auth/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/server/response"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type AuthHandler struct {
	uc     auth.UseCase
	logger logger.ZapLogger
}

func NewAuthHandler(uc auth.UseCase, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: log}
}

func (h *AuthHandler) Routes(tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.With(auth.Authenticate(tm), auth.RequireRoles("superadmin")).Post("/register", h.Register)
	return r
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, _, err := h.uc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Error(w, http.StatusBadRequest, "Invalid username or password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	response.JSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" {
		response.Error(w, http.StatusBadRequest, "Username is required")
		return
	}
	if len(req.Password) < 6 {
		response.Error(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	user, err := h.uc.Register(r.Context(), &dto.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		BusinessID: req.BusinessID,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidRole):
			response.Error(w, http.StatusBadRequest, "Invalid role")
		case errors.Is(err, auth.ErrUserExists):
			response.Error(w, http.StatusBadRequest, "User already exists")
		default:
			h.logger.Error("register failed", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user_id": user.UserID,
	})
}
