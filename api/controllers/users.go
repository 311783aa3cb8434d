package controllers

import (
	"net/http"
	"time"

	"github.com/rydeapp/ryde-backend/api/responses"
	"github.com/rydeapp/ryde-backend/api/validators"
	"github.com/rydeapp/ryde-backend/internal/users"
	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
	"github.com/rydeapp/ryde-backend/pkg/logger"
)

type createUserRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	ClerkID string `json:"clerk_id" validate:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ClerkID   string    `json:"clerk_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUser records a rider registered with the external identity provider.
func CreateUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindInternal, "user service unavailable"))
			return
		}

		var payload createUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), users.CreateUserDTO{
			Name:    payload.Name,
			Email:   payload.Email,
			ClerkID: payload.ClerkID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, userResponse{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			ClerkID:   user.ClerkID,
			CreatedAt: user.CreatedAt.UTC(),
		})
	}
}
