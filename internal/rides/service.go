package rides

import (
	"context"
	"strings"

	"github.com/rydeapp/ryde-backend/pkg/db/models"
	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
)

const (
	// DefaultRecentLimit bounds the home screen's recent-rides list.
	DefaultRecentLimit = 10
	// MaxRecentLimit caps what a client may request.
	MaxRecentLimit = 50
)

// Service records completed rides and serves a rider's history.
type Service interface {
	Record(ctx context.Context, dto CreateRideDTO) (*models.Ride, error)
	RecentByUser(ctx context.Context, userID string, limit int) ([]models.Ride, error)
}

type rideRepo interface {
	Create(ctx context.Context, dto CreateRideDTO) (*models.Ride, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Ride, error)
}

type service struct {
	repo rideRepo
}

// NewService constructs a ride service over the given repository.
func NewService(repo rideRepo) (*service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.KindInternal, "rides repo required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, dto CreateRideDTO) (*models.Ride, error) {
	if strings.TrimSpace(dto.UserID) == "" {
		return nil, pkgerrors.New(pkgerrors.KindValidation, "user id is required")
	}
	if !dto.PaymentStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.KindValidation, "unknown payment status")
	}
	if dto.FarePrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.KindValidation, "fare price must not be negative")
	}

	ride, err := s.repo.Create(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindDependency, err, "create ride record")
	}
	return ride, nil
}

func (s *service) RecentByUser(ctx context.Context, userID string, limit int) ([]models.Ride, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.KindValidation, "user id is required")
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	rides, err := s.repo.ListRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindDependency, err, "list recent rides")
	}
	return rides, nil
}
