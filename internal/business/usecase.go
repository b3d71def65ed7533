package business

import (
	"context"

	"github.com/fekuna/omnipos-backoffice-service/internal/business/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrNotFound      = errors.New("business not found")
	ErrInvalidStatus = errors.New("invalid business status")
)

type UseCase interface {
	Onboard(ctx context.Context, input *dto.OnboardInput) (*model.Business, error)
	List(ctx context.Context) ([]model.Business, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
