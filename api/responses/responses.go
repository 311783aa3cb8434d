package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
	"github.com/rydeapp/ryde-backend/pkg/logger"
	"github.com/rydeapp/ryde-backend/pkg/types"
)

const (
	validationMessage = "Validation error"
	internalMessage   = "Internal server error"
)

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// WriteError translates any error into the uniform {error, code, status}
// body. Validation errors keep their field details and drop the code;
// untyped errors collapse to a generic 500 so internals never leak.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.KindInternal, err, "unexpected error")
	}

	payload := types.APIError{
		Error:  typed.Message(),
		Code:   string(typed.Kind()),
		Status: typed.Status(),
	}

	switch typed.Kind() {
	case pkgerrors.KindValidation:
		payload.Error = validationMessage
		payload.Code = ""
		payload.Details = typed.Details()
	case pkgerrors.KindInternal:
		payload.Error = internalMessage
		payload.Code = ""
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)

		fields := map[string]any{
			"error":             dump.TopMessage,
			"error_kind":        dump.Kind,
			"error_chain":       dump.Chain,
			"stripe_code":       dump.StripeCode,
			"stripe_status":     dump.StripeStatus,
			"stripe_request_id": dump.StripeRequestID,
			"pg_code":           dump.PGCode,
			"pg_detail":         dump.PGDetail,
			"pg_constraint":     dump.PGConstraint,
		}

		ctx = logg.WithFields(ctx, fields)
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, payload.Status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
