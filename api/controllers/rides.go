package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rydeapp/ryde-backend/api/responses"
	"github.com/rydeapp/ryde-backend/api/validators"
	"github.com/rydeapp/ryde-backend/internal/rides"
	"github.com/rydeapp/ryde-backend/pkg/db/models"
	"github.com/rydeapp/ryde-backend/pkg/enums"
	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
	"github.com/rydeapp/ryde-backend/pkg/logger"
)

type createRideRequest struct {
	UserID               string  `json:"user_id" validate:"required"`
	DriverID             int     `json:"driver_id" validate:"required"`
	OriginAddress        string  `json:"origin_address" validate:"required"`
	DestinationAddress   string  `json:"destination_address" validate:"required"`
	OriginLatitude       float64 `json:"origin_latitude"`
	OriginLongitude      float64 `json:"origin_longitude"`
	DestinationLatitude  float64 `json:"destination_latitude"`
	DestinationLongitude float64 `json:"destination_longitude"`
	RideTimeMinutes      int     `json:"ride_time" validate:"required,gt=0"`
	FarePrice            float64 `json:"fare_price" validate:"required,gt=0"`
	PaymentStatus        string  `json:"payment_status" validate:"required"`
}

type rideResponse struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"user_id"`
	DriverID             int             `json:"driver_id"`
	OriginAddress        string          `json:"origin_address"`
	DestinationAddress   string          `json:"destination_address"`
	OriginLatitude       float64         `json:"origin_latitude"`
	OriginLongitude      float64         `json:"origin_longitude"`
	DestinationLatitude  float64         `json:"destination_latitude"`
	DestinationLongitude float64         `json:"destination_longitude"`
	RideTimeMinutes      int             `json:"ride_time"`
	FarePrice            decimal.Decimal `json:"fare_price"`
	PaymentStatus        string          `json:"payment_status"`
	CreatedAt            time.Time       `json:"created_at"`
}

func toRideResponse(ride models.Ride) rideResponse {
	return rideResponse{
		ID:                   ride.ID.String(),
		UserID:               ride.UserID,
		DriverID:             ride.DriverID,
		OriginAddress:        ride.OriginAddress,
		DestinationAddress:   ride.DestinationAddress,
		OriginLatitude:       ride.OriginLatitude,
		OriginLongitude:      ride.OriginLongitude,
		DestinationLatitude:  ride.DestinationLatitude,
		DestinationLongitude: ride.DestinationLongitude,
		RideTimeMinutes:      ride.RideTimeMinutes,
		FarePrice:            ride.FarePrice,
		PaymentStatus:        ride.PaymentStatus.String(),
		CreatedAt:            ride.CreatedAt.UTC(),
	}
}

// CreateRide records a completed ride after its payment was confirmed.
func CreateRide(svc rides.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindInternal, "ride service unavailable"))
			return
		}

		var payload createRideRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParsePaymentStatus(payload.PaymentStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindValidation, err, "validation failed"))
			return
		}

		ride, err := svc.Record(r.Context(), rides.CreateRideDTO{
			UserID:               payload.UserID,
			DriverID:             payload.DriverID,
			OriginAddress:        payload.OriginAddress,
			DestinationAddress:   payload.DestinationAddress,
			OriginLatitude:       payload.OriginLatitude,
			OriginLongitude:      payload.OriginLongitude,
			DestinationLatitude:  payload.DestinationLatitude,
			DestinationLongitude: payload.DestinationLongitude,
			RideTimeMinutes:      payload.RideTimeMinutes,
			FarePrice:            decimal.NewFromFloat(payload.FarePrice),
			PaymentStatus:        status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toRideResponse(*ride))
	}
}

// ListUserRides returns a rider's most recent rides, newest first.
func ListUserRides(svc rides.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindInternal, "ride service unavailable"))
			return
		}

		userID := chi.URLParam(r, "userId")

		limit, err := validators.ParseQueryInt(r, "limit", rides.DefaultRecentLimit, 1, rides.MaxRecentLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rideRows, err := svc.RecentByUser(r.Context(), userID, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]rideResponse, 0, len(rideRows))
		for _, ride := range rideRows {
			out = append(out, toRideResponse(ride))
		}
		responses.WriteSuccess(w, out)
	}
}
