package controllers

import (
	"net/http"

	"github.com/stripe/stripe-go/v84"

	"github.com/rydeapp/ryde-backend/api/responses"
	"github.com/rydeapp/ryde-backend/api/validators"
	"github.com/rydeapp/ryde-backend/internal/payments"
	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
	"github.com/rydeapp/ryde-backend/pkg/logger"
)

type paymentSheetRequest struct {
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type paymentSheetResponse struct {
	PaymentIntent  *stripe.PaymentIntent `json:"paymentIntent"`
	EphemeralKey   *stripe.EphemeralKey  `json:"ephemeralKey"`
	Customer       string                `json:"customer"`
	PublishableKey string                `json:"publishableKey"`
}

type paymentConfirmRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
	CustomerID      string `json:"customer_id" validate:"required"`
}

type paymentConfirmResponse struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message"`
	PaymentIntent *stripe.PaymentIntent `json:"paymentIntent"`
}

// CreatePaymentSheet runs the setup pipeline: resolve customer, mint an
// ephemeral key, open a payment intent. The client uses the returned bundle
// to present its payment sheet.
func CreatePaymentSheet(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindInternal, "payment service unavailable"))
			return
		}

		var payload paymentSheetRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Setup(r.Context(), payments.SetupInput{
			Name:   payload.Name,
			Email:  payload.Email,
			Amount: payload.Amount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, paymentSheetResponse{
			PaymentIntent:  result.PaymentIntent,
			EphemeralKey:   result.EphemeralKey,
			Customer:       result.CustomerID,
			PublishableKey: result.PublishableKey,
		})
	}
}

// ConfirmPayment runs the confirmation pipeline: attach the collected
// payment method, confirm the intent, and report a terminal verdict.
func ConfirmPayment(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindInternal, "payment service unavailable"))
			return
		}

		var payload paymentConfirmRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Confirm(r.Context(), payments.ConfirmInput{
			PaymentMethodID: payload.PaymentMethodID,
			PaymentIntentID: payload.PaymentIntentID,
			CustomerID:      payload.CustomerID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, paymentConfirmResponse{
			Success:       true,
			Message:       "Payment successful",
			PaymentIntent: result.PaymentIntent,
		})
	}
}
