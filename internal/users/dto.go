package users

import "github.com/rydeapp/ryde-backend/pkg/db/models"

// CreateUserDTO captures a rider registration coming from the mobile client.
type CreateUserDTO struct {
	Name    string
	Email   string
	ClerkID string
}

// ToModel maps the DTO onto the persistence model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Name:    d.Name,
		Email:   d.Email,
		ClerkID: d.ClerkID,
	}
}
