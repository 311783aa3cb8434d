package payments

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v84"
)

// stubStripeClient records every call so tests can assert stage ordering and
// the exact parameters each stage sent.
type stubStripeClient struct {
	existingCustomers []*stripe.Customer
	listErr           error
	listCalls         int
	listEmails        []string
	listLimits        []int64

	createdCustomer *stripe.Customer
	createErr       error
	createCalls     int
	createParams    []*stripe.CustomerParams

	ephemeralKey *stripe.EphemeralKey
	keyErr       error
	keyCalls     int
	keyParams    []*stripe.EphemeralKeyParams

	intent       *stripe.PaymentIntent
	intentErr    error
	intentCalls  int
	intentParams []*stripe.PaymentIntentParams

	attachedMethod *stripe.PaymentMethod
	attachErr      error
	attachCalls    int
	attachIDs      []string
	attachParams   []*stripe.PaymentMethodAttachParams

	confirmedIntent *stripe.PaymentIntent
	confirmErr      error
	confirmCalls    int
	confirmIDs      []string
	confirmParams   []*stripe.PaymentIntentConfirmParams
}

func (s *stubStripeClient) ListCustomersByEmail(_ context.Context, email string, limit int64) ([]*stripe.Customer, error) {
	s.listCalls++
	s.listEmails = append(s.listEmails, email)
	s.listLimits = append(s.listLimits, limit)
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.existingCustomers, nil
}

func (s *stubStripeClient) CreateCustomer(_ context.Context, params *stripe.CustomerParams) (*stripe.Customer, error) {
	s.createCalls++
	s.createParams = append(s.createParams, params)
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.createdCustomer == nil {
		return nil, errors.New("stub: no customer configured")
	}
	return s.createdCustomer, nil
}

func (s *stubStripeClient) CreateEphemeralKey(_ context.Context, params *stripe.EphemeralKeyParams) (*stripe.EphemeralKey, error) {
	s.keyCalls++
	s.keyParams = append(s.keyParams, params)
	if s.keyErr != nil {
		return nil, s.keyErr
	}
	if s.ephemeralKey == nil {
		return nil, errors.New("stub: no ephemeral key configured")
	}
	return s.ephemeralKey, nil
}

func (s *stubStripeClient) CreatePaymentIntent(_ context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	s.intentCalls++
	s.intentParams = append(s.intentParams, params)
	if s.intentErr != nil {
		return nil, s.intentErr
	}
	if s.intent == nil {
		return nil, errors.New("stub: no intent configured")
	}
	return s.intent, nil
}

func (s *stubStripeClient) AttachPaymentMethod(_ context.Context, id string, params *stripe.PaymentMethodAttachParams) (*stripe.PaymentMethod, error) {
	s.attachCalls++
	s.attachIDs = append(s.attachIDs, id)
	s.attachParams = append(s.attachParams, params)
	if s.attachErr != nil {
		return nil, s.attachErr
	}
	if s.attachedMethod == nil {
		return nil, errors.New("stub: no method configured")
	}
	return s.attachedMethod, nil
}

func (s *stubStripeClient) ConfirmPaymentIntent(_ context.Context, id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	s.confirmCalls++
	s.confirmIDs = append(s.confirmIDs, id)
	s.confirmParams = append(s.confirmParams, params)
	if s.confirmErr != nil {
		return nil, s.confirmErr
	}
	if s.confirmedIntent == nil {
		return nil, errors.New("stub: no confirmed intent configured")
	}
	return s.confirmedIntent, nil
}

func (s *stubStripeClient) totalCalls() int {
	return s.listCalls + s.createCalls + s.keyCalls + s.intentCalls + s.attachCalls + s.confirmCalls
}
