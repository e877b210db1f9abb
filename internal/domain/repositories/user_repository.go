package repositories

import (
	"purple-insta/internal/domain/entities"
)

// UserRepository lookups return (nil, nil) when no row matches, so callers
// can distinguish "absent" from a store failure.
type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uint) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByCredentials(username string) (*entities.User, error)
	UpdateZipCode(id uint, zipCode string) error
}
