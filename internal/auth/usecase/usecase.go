package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/auth/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var allowedRoles = map[string]struct{}{
	"superadmin": {},
	"manager":    {},
	"admin":      {},
}

type authUseCase struct {
	repo   auth.Repository
	tokens *auth.TokenManager
	logger logger.ZapLogger
}

func NewAuthUseCase(repo auth.Repository, tokens *auth.TokenManager, log logger.ZapLogger) auth.UseCase {
	return &authUseCase{
		repo:   repo,
		tokens: tokens,
		logger: log,
	}
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, auth.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}

	uc.logger.Info("user logged in",
		zap.Int64("user_id", user.UserID),
		zap.String("role", user.Role),
	)
	return token, user, nil
}

func (uc *authUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	if _, ok := allowedRoles[input.Role]; !ok {
		return nil, auth.ErrInvalidRole
	}

	existing, err := uc.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, auth.ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:   input.Username,
		Password:   string(hashed),
		Role:       input.Role,
		BusinessID: input.BusinessID,
		CreatedAt:  time.Now(),
	}
	id, err := uc.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.UserID = id
	return user, nil
}
