package repositories

import (
	"purple-insta/internal/domain/entities"
)

type PostRepository interface {
	Create(post *entities.Post) (*entities.Post, error)
	FindById(id uint) (*entities.Post, error)
	// ListNewestFirst returns every post ordered by descending id.
	ListNewestFirst() ([]entities.Post, error)
	// IncrementLikes adds one to the like counter. A nonexistent id is a
	// no-op, not an error.
	IncrementLikes(id uint) error
	Exists(id uint) (bool, error)
}
