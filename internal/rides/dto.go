package rides

import (
	"github.com/shopspring/decimal"

	"github.com/rydeapp/ryde-backend/pkg/db/models"
	"github.com/rydeapp/ryde-backend/pkg/enums"
)

// CreateRideDTO captures the ride record the client writes after its payment
// was confirmed.
type CreateRideDTO struct {
	UserID               string
	DriverID             int
	OriginAddress        string
	DestinationAddress   string
	OriginLatitude       float64
	OriginLongitude      float64
	DestinationLatitude  float64
	DestinationLongitude float64
	RideTimeMinutes      int
	FarePrice            decimal.Decimal
	PaymentStatus        enums.PaymentStatus
}

// ToModel maps the DTO onto the persistence model.
func (d CreateRideDTO) ToModel() *models.Ride {
	return &models.Ride{
		UserID:               d.UserID,
		DriverID:             d.DriverID,
		OriginAddress:        d.OriginAddress,
		DestinationAddress:   d.DestinationAddress,
		OriginLatitude:       d.OriginLatitude,
		OriginLongitude:      d.OriginLongitude,
		DestinationLatitude:  d.DestinationLatitude,
		DestinationLongitude: d.DestinationLongitude,
		RideTimeMinutes:      d.RideTimeMinutes,
		FarePrice:            d.FarePrice,
		PaymentStatus:        d.PaymentStatus,
	}
}
