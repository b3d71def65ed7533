package auth

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
)

type UseCase interface {
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)
}
