package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rydeapp/ryde-backend/pkg/enums"
)

// Ride is the durable record written after a confirmed payment.
type Ride struct {
	ID                   uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID               string              `gorm:"column:user_id;type:text;not null;index"`
	DriverID             int                 `gorm:"column:driver_id;not null"`
	OriginAddress        string              `gorm:"column:origin_address;type:text;not null"`
	DestinationAddress   string              `gorm:"column:destination_address;type:text;not null"`
	OriginLatitude       float64             `gorm:"column:origin_latitude;not null"`
	OriginLongitude      float64             `gorm:"column:origin_longitude;not null"`
	DestinationLatitude  float64             `gorm:"column:destination_latitude;not null"`
	DestinationLongitude float64             `gorm:"column:destination_longitude;not null"`
	RideTimeMinutes      int                 `gorm:"column:ride_time_minutes;not null"`
	FarePrice            decimal.Decimal     `gorm:"column:fare_price;type:numeric(10,2);not null"`
	PaymentStatus        enums.PaymentStatus `gorm:"column:payment_status;type:text;not null;default:'pending'"`
	CreatedAt            time.Time           `gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate assigns an id when the database default is unavailable.
func (r *Ride) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
