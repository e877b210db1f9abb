package repositories

import (
	"purple-insta/internal/domain/entities"
)

type CommentRepository interface {
	Create(comment *entities.Comment) (*entities.Comment, error)
	FindByPostId(postId uint) ([]entities.Comment, error)
}
