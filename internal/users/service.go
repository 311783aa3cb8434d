package users

import (
	"context"
	"strings"

	"github.com/rydeapp/ryde-backend/pkg/db"
	"github.com/rydeapp/ryde-backend/pkg/db/models"
	pkgerrors "github.com/rydeapp/ryde-backend/pkg/errors"
)

// Service records registered riders.
type Service interface {
	Register(ctx context.Context, dto CreateUserDTO) (*models.User, error)
}

type userCreator interface {
	Create(ctx context.Context, dto CreateUserDTO) (*models.User, error)
}

type service struct {
	repo userCreator
}

// NewService constructs a user service over the given repository.
func NewService(repo userCreator) (*service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.KindInternal, "users repo required")
	}
	return &service{repo: repo}, nil
}

// Register persists a rider row. Duplicate registrations for the same clerk
// id surface as a conflict rather than a second row.
func (s *service) Register(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	dto.Name = strings.TrimSpace(dto.Name)
	dto.Email = strings.TrimSpace(dto.Email)
	dto.ClerkID = strings.TrimSpace(dto.ClerkID)
	if dto.Name == "" || dto.Email == "" || dto.ClerkID == "" {
		return nil, pkgerrors.New(pkgerrors.KindValidation, "validation failed")
	}

	user, err := s.repo.Create(ctx, dto)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.KindConflict, err, "user already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.KindDependency, err, "create user record")
	}
	return user, nil
}
