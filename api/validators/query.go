package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
	"github.com/rydeapp/ryde-backend/pkg/types"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.KindValidation, "query parameter must be numeric").
			WithDetails([]types.FieldViolation{{Field: key, Message: "must be numeric"}})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.KindValidation, "query parameter out of range").
			WithDetails([]types.FieldViolation{{Field: key, Message: "out of range"}})
	}
	return value, nil
}
