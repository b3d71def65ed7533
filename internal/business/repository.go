package business

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
)

type Repository interface {
	// Onboard inserts the business and its first admin user in one
	// transaction and returns the new business id.
	Onboard(ctx context.Context, b *model.Business, admin *model.User) (int64, error)

	List(ctx context.Context) ([]model.Business, error)
	FindByID(ctx context.Context, id int64) (*model.Business, error)
	UpdateStatus(ctx context.Context, id int64, status string, verifiedAt time.Time) error
}
