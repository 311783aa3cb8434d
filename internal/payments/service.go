package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v84"

	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
	"github.com/rydeapp/ryde-backend/pkg/types"
)

// stripeAPIVersion pins the version ephemeral keys are minted against. It
// must match the version the mobile SDK was built for.
const stripeAPIVersion = "2024-12-18.acacia"

const intentCurrency = string(stripe.CurrencyUSD)

// Service runs the two payment workflows: Setup resolves a customer, mints
// an ephemeral key and opens a payment intent; Confirm attaches a collected
// payment method and confirms the intent. Stages run strictly in order and
// earlier side effects are not rolled back when a later stage fails.
type Service interface {
	Setup(ctx context.Context, input SetupInput) (*SetupResult, error)
	Confirm(ctx context.Context, input ConfirmInput) (*ConfirmResult, error)
}

// SetupInput identifies the payer and the charge amount in major units.
type SetupInput struct {
	Name   string
	Email  string
	Amount float64
}

// SetupResult bundles everything the client needs to present its payment
// sheet.
type SetupResult struct {
	PaymentIntent  *stripe.PaymentIntent
	EphemeralKey   *stripe.EphemeralKey
	CustomerID     string
	PublishableKey string
}

// ConfirmInput carries the correlation ids returned from Setup plus the
// payment method the client collected.
type ConfirmInput struct {
	PaymentMethodID string
	PaymentIntentID string
	CustomerID      string
}

// ConfirmResult holds the confirmed intent after a succeeded verdict.
type ConfirmResult struct {
	PaymentIntent *stripe.PaymentIntent
}

// ServiceParams groups dependencies for the payment service.
type ServiceParams struct {
	StripeClient   StripePaymentClient
	PublishableKey string
}

type service struct {
	stripe         StripePaymentClient
	publishableKey string
}

// NewService constructs the payment orchestration service.
func NewService(params ServiceParams) (*service, error) {
	if params.StripeClient == nil {
		return nil, pkgerrors.New(pkgerrors.KindInternal, "stripe client required")
	}
	if strings.TrimSpace(params.PublishableKey) == "" {
		return nil, pkgerrors.New(pkgerrors.KindInternal, "publishable key required")
	}
	return &service{
		stripe:         params.StripeClient,
		publishableKey: params.PublishableKey,
	}, nil
}

func (s *service) Setup(ctx context.Context, input SetupInput) (*SetupResult, error) {
	if err := validateSetup(input); err != nil {
		return nil, err
	}

	cust, err := s.resolveCustomer(ctx, input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	key, err := s.issueEphemeralKey(ctx, cust.ID)
	if err != nil {
		return nil, err
	}

	intent, err := s.createPaymentIntent(ctx, cust.ID, input.Amount)
	if err != nil {
		return nil, err
	}

	return &SetupResult{
		PaymentIntent:  intent,
		EphemeralKey:   key,
		CustomerID:     cust.ID,
		PublishableKey: s.publishableKey,
	}, nil
}

// resolveCustomer reuses an existing Stripe customer matching the email or
// creates a new one. Two concurrent first-time setups for the same email can
// both miss the lookup and create duplicates; Stripe offers no atomic
// upsert-by-email, so the race is accepted.
func (s *service) resolveCustomer(ctx context.Context, name, email string) (*stripe.Customer, error) {
	customers, err := s.stripe.ListCustomersByEmail(ctx, email, 1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindCustomer, err, "Failed to process customer information")
	}
	if len(customers) > 0 && customers[0] != nil {
		return customers[0], nil
	}

	created, err := s.stripe.CreateCustomer(ctx, &stripe.CustomerParams{
		Name:  stripe.String(name),
		Email: stripe.String(email),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindCustomer, err, "Failed to process customer information")
	}
	if created == nil || created.ID == "" {
		return nil, pkgerrors.New(pkgerrors.KindCustomer, "Failed to process customer information")
	}
	return created, nil
}

func (s *service) issueEphemeralKey(ctx context.Context, customerID string) (*stripe.EphemeralKey, error) {
	key, err := s.stripe.CreateEphemeralKey(ctx, &stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(stripeAPIVersion),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindEphemeralKey, err, "Failed to create ephemeral key")
	}
	if key == nil || key.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.KindEphemeralKey, "Failed to create ephemeral key")
	}
	return key, nil
}

func (s *service) createPaymentIntent(ctx context.Context, customerID string, amount float64) (*stripe.PaymentIntent, error) {
	intent, err := s.stripe.CreatePaymentIntent(ctx, &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(amount)),
		Currency: stripe.String(intentCurrency),
		Customer: stripe.String(customerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(string(stripe.PaymentIntentAutomaticPaymentMethodsAllowRedirectsNever)),
		},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.KindPaymentIntent, err, "Failed to create payment intent")
	}
	if intent == nil || intent.ClientSecret == "" {
		return nil, pkgerrors.New(pkgerrors.KindPaymentIntent, "Failed to create payment intent")
	}
	return intent, nil
}

func (s *service) Confirm(ctx context.Context, input ConfirmInput) (*ConfirmResult, error) {
	if err := validateConfirm(input); err != nil {
		return nil, err
	}

	method, err := s.attachPaymentMethod(ctx, input.PaymentMethodID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	// Confirm with the attached method's id; attach can return a
	// canonicalized reference that differs from the input id.
	intent, err := s.confirmPaymentIntent(ctx, input.PaymentIntentID, method.ID)
	if err != nil {
		return nil, err
	}

	// Only an exact succeeded status is a success. Intermediate states
	// (requires_action, processing, ...) are final for this request; the
	// workflow does not poll.
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, pkgerrors.New(
			pkgerrors.KindPaymentFailed,
			fmt.Sprintf("Payment not successful. Status: %s", intent.Status),
		)
	}

	return &ConfirmResult{PaymentIntent: intent}, nil
}

func (s *service) attachPaymentMethod(ctx context.Context, methodID, customerID string) (*stripe.PaymentMethod, error) {
	method, err := s.stripe.AttachPaymentMethod(ctx, methodID, &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, pkgerrors.Wrap(pkgerrors.KindPaymentMethodAttachment, err, providerMessage(stripeErr, "Failed to attach payment method")).
				WithStatus(stripeErr.HTTPStatusCode)
		}
		return nil, pkgerrors.Wrap(pkgerrors.KindPaymentMethod, err, "Failed to attach payment method")
	}
	if method == nil || method.ID == "" {
		return nil, pkgerrors.New(pkgerrors.KindPaymentMethod, "Failed to attach payment method")
	}
	return method, nil
}

func (s *service) confirmPaymentIntent(ctx context.Context, intentID, methodID string) (*stripe.PaymentIntent, error) {
	intent, err := s.stripe.ConfirmPaymentIntent(ctx, intentID, &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(methodID),
	})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return nil, pkgerrors.Wrap(pkgerrors.KindPaymentConfirmation, err, providerMessage(stripeErr, "Failed to confirm payment")).
				WithStatus(stripeErr.HTTPStatusCode)
		}
		return nil, pkgerrors.Wrap(pkgerrors.KindConfirmation, err, "Failed to confirm payment")
	}
	if intent == nil {
		return nil, pkgerrors.New(pkgerrors.KindConfirmation, "Failed to confirm payment")
	}
	return intent, nil
}

func validateSetup(input SetupInput) error {
	var violations []types.FieldViolation
	if strings.TrimSpace(input.Name) == "" {
		violations = append(violations, types.FieldViolation{Field: "name", Message: "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		violations = append(violations, types.FieldViolation{Field: "email", Message: "is required"})
	}
	if input.Amount <= 0 {
		violations = append(violations, types.FieldViolation{Field: "amount", Message: "must be greater than 0"})
	}
	if len(violations) > 0 {
		return pkgerrors.New(pkgerrors.KindValidation, "validation failed").WithDetails(violations)
	}
	return nil
}

func validateConfirm(input ConfirmInput) error {
	var violations []types.FieldViolation
	if strings.TrimSpace(input.PaymentMethodID) == "" {
		violations = append(violations, types.FieldViolation{Field: "payment_method_id", Message: "is required"})
	}
	if strings.TrimSpace(input.PaymentIntentID) == "" {
		violations = append(violations, types.FieldViolation{Field: "payment_intent_id", Message: "is required"})
	}
	if strings.TrimSpace(input.CustomerID) == "" {
		violations = append(violations, types.FieldViolation{Field: "customer_id", Message: "is required"})
	}
	if len(violations) > 0 {
		return pkgerrors.New(pkgerrors.KindValidation, "validation failed").WithDetails(violations)
	}
	return nil
}

func providerMessage(err *stripe.Error, fallback string) string {
	if err != nil && strings.TrimSpace(err.Msg) != "" {
		return err.Msg
	}
	return fallback
}
