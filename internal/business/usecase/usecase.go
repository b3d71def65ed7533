package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/business"
	"github.com/fekuna/omnipos-backoffice-service/internal/business/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var allowedStatuses = map[string]struct{}{
	"pending":  {},
	"verified": {},
	"rejected": {},
}

type businessUseCase struct {
	repo   business.Repository
	logger logger.ZapLogger
}

func NewBusinessUseCase(repo business.Repository, log logger.ZapLogger) business.UseCase {
	return &businessUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *businessUseCase) Onboard(ctx context.Context, input *dto.OnboardInput) (*model.Business, error) {
	if input.Name == "" || input.AdminUsername == "" || input.AdminPassword == "" {
		return nil, errors.New("name, admin username and admin password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	b := &model.Business{
		Name:               input.Name,
		Address:            optional(input.Address),
		Contact:            optional(input.Contact),
		RegistrationNumber: optional(input.RegistrationNumber),
		Status:             "pending",
		VerificationDate:   now,
	}
	admin := &model.User{
		Username:  input.AdminUsername,
		Password:  string(hashed),
		Role:      "admin",
		CreatedAt: now,
	}

	id, err := uc.repo.Onboard(ctx, b, admin)
	if err != nil {
		return nil, err
	}
	b.ID = id

	uc.logger.Info("business onboarded",
		zap.Int64("business_id", id),
		zap.String("name", b.Name),
	)
	return b, nil
}

func (uc *businessUseCase) List(ctx context.Context) ([]model.Business, error) {
	return uc.repo.List(ctx)
}

func (uc *businessUseCase) UpdateStatus(ctx context.Context, id int64, status string) error {
	if _, ok := allowedStatuses[status]; !ok {
		return business.ErrInvalidStatus
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return business.ErrNotFound
	}

	return uc.repo.UpdateStatus(ctx, id, status, time.Now())
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
