package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rydeapp/ryde-backend/internal/rides"
	"github.com/rydeapp/ryde-backend/pkg/db/models"
	"github.com/rydeapp/ryde-backend/pkg/enums"
)

type stubRideService struct {
	ride *models.Ride
	list []models.Ride
	err  error

	recorded  *rides.CreateRideDTO
	listUser  string
	listLimit int
}

func (s *stubRideService) Record(ctx context.Context, dto rides.CreateRideDTO) (*models.Ride, error) {
	s.recorded = &dto
	if s.err != nil {
		return nil, s.err
	}
	return s.ride, nil
}

func (s *stubRideService) RecentByUser(ctx context.Context, userID string, limit int) ([]models.Ride, error) {
	s.listUser = userID
	s.listLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func sampleRide(userID string) models.Ride {
	return models.Ride{
		ID:                   uuid.New(),
		UserID:               userID,
		DriverID:             2,
		OriginAddress:        "1 Market St",
		DestinationAddress:   "500 Castro St",
		OriginLatitude:       37.79,
		OriginLongitude:      -122.39,
		DestinationLatitude:  37.76,
		DestinationLongitude: -122.43,
		RideTimeMinutes:      18,
		FarePrice:            decimal.NewFromFloat(23.50),
		PaymentStatus:        enums.PaymentStatusPaid,
		CreatedAt:            time.Now(),
	}
}

func withUserIDParam(req *http.Request, userID string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func TestCreateRideReturnsCreated(t *testing.T) {
	ride := sampleRide("user_123")
	svc := &stubRideService{ride: &ride}
	handler := CreateRide(svc, testLogger())

	resp := postJSON(t, handler, "/api/v1/rides", map[string]any{
		"user_id":               "user_123",
		"driver_id":             2,
		"origin_address":        "1 Market St",
		"destination_address":   "500 Castro St",
		"origin_latitude":       37.79,
		"origin_longitude":      -122.39,
		"destination_latitude":  37.76,
		"destination_longitude": -122.43,
		"ride_time":             18,
		"fare_price":            23.50,
		"payment_status":        "paid",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var body rideResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.UserID != "user_123" || body.PaymentStatus != "paid" {
		t.Fatalf("unexpected ride body: %+v", body)
	}
	if svc.recorded == nil || !svc.recorded.FarePrice.Equal(decimal.NewFromFloat(23.50)) {
		t.Fatalf("service did not receive the fare: %+v", svc.recorded)
	}
	if svc.recorded.PaymentStatus != enums.PaymentStatusPaid {
		t.Fatalf("unexpected payment status: %s", svc.recorded.PaymentStatus)
	}
}

func TestCreateRideRejectsUnknownPaymentStatus(t *testing.T) {
	svc := &stubRideService{}
	handler := CreateRide(svc, testLogger())

	resp := postJSON(t, handler, "/api/v1/rides", map[string]any{
		"user_id":             "user_123",
		"driver_id":           2,
		"origin_address":      "1 Market St",
		"destination_address": "500 Castro St",
		"ride_time":           18,
		"fare_price":          23.50,
		"payment_status":      "refunded",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if svc.recorded != nil {
		t.Fatal("service must not run for an unknown payment status")
	}
}

func TestListUserRidesReturnsRecentRides(t *testing.T) {
	svc := &stubRideService{list: []models.Ride{sampleRide("user_123"), sampleRide("user_123")}}
	handler := ListUserRides(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rides/user_123", nil)
	req = withUserIDParam(req, "user_123")
	resp := httptest.NewRecorder()
	handler(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body []rideResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 rides, got %d", len(body))
	}
	if svc.listUser != "user_123" || svc.listLimit != rides.DefaultRecentLimit {
		t.Fatalf("unexpected list call: user=%q limit=%d", svc.listUser, svc.listLimit)
	}
}

func TestListUserRidesHonorsLimitQuery(t *testing.T) {
	svc := &stubRideService{list: []models.Ride{sampleRide("user_123")}}
	handler := ListUserRides(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rides/user_123?limit=5", nil)
	req = withUserIDParam(req, "user_123")
	resp := httptest.NewRecorder()
	handler(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if svc.listLimit != 5 {
		t.Fatalf("expected limit 5, got %d", svc.listLimit)
	}
}

func TestListUserRidesRejectsBadLimit(t *testing.T) {
	svc := &stubRideService{}
	handler := ListUserRides(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rides/user_123?limit=abc", nil)
	req = withUserIDParam(req, "user_123")
	resp := httptest.NewRecorder()
	handler(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if svc.listUser != "" {
		t.Fatal("service must not run for an invalid limit")
	}
}
