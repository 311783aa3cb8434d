package rides

import (
	"context"

	"gorm.io/gorm"

	"github.com/rydeapp/ryde-backend/pkg/db/models"
)

// Repository exposes ride persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a rides repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a ride record and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateRideDTO) (*models.Ride, error) {
	ride := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(ride).Error; err != nil {
		return nil, err
	}
	return ride, nil
}

// ListRecentByUser returns the rider's most recent rides, newest first.
func (r *Repository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Ride, error) {
	var rides []models.Ride
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rides).Error
	if err != nil {
		return nil, err
	}
	return rides, nil
}
