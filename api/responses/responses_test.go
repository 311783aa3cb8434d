package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
	"github.com/rydeapp/ryde-backend/pkg/types"
)

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, map[string]string{"hello": "world"})

	if got := w.Code; got != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Fatalf("unexpected payload %v", body)
	}
}

func TestWriteErrorStageShape(t *testing.T) {
	w := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.KindEphemeralKey, "Failed to create ephemeral key")
	WriteError(context.Background(), nil, w, err)

	if got := w.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected status 500 but got %d", got)
	}

	var body types.APIError
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Error != "Failed to create ephemeral key" {
		t.Fatalf("unexpected message %q", body.Error)
	}
	if body.Code != string(pkgerrors.KindEphemeralKey) {
		t.Fatalf("unexpected code %q", body.Code)
	}
	if body.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected status field %d", body.Status)
	}
}

func TestWriteErrorValidationShape(t *testing.T) {
	w := httptest.NewRecorder()
	details := []types.FieldViolation{{Field: "email", Message: "must be a valid email"}}
	err := pkgerrors.New(pkgerrors.KindValidation, "validation failed").WithDetails(details)
	WriteError(context.Background(), nil, w, err)

	if got := w.Code; got != http.StatusBadRequest {
		t.Fatalf("expected status 400 but got %d", got)
	}

	var body types.APIError
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Error != "Validation error" {
		t.Fatalf("unexpected message %q", body.Error)
	}
	if body.Code != "" {
		t.Fatalf("validation responses carry no code, got %q", body.Code)
	}
	if body.Details == nil {
		t.Fatal("expected field details")
	}
}

func TestWriteErrorCollapsesUntypedErrors(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), nil, w, errors.New("boom"))

	if got := w.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected status 500 but got %d", got)
	}

	var body types.APIError
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Error != "Internal server error" {
		t.Fatalf("internals leaked: %q", body.Error)
	}
	if body.Code != "" || body.Details != nil {
		t.Fatalf("unexpected extras in internal error body: %+v", body)
	}
}

func TestWriteErrorProviderStatusPassthrough(t *testing.T) {
	w := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.KindPaymentMethodAttachment, "The payment method is already attached to a customer.").
		WithStatus(http.StatusPaymentRequired)
	WriteError(context.Background(), nil, w, err)

	if got := w.Code; got != http.StatusPaymentRequired {
		t.Fatalf("expected provider status 402 but got %d", got)
	}
}
