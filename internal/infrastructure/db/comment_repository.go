package db

import (
	"gorm.io/gorm"

	"purple-insta/internal/domain/entities"
	"purple-insta/internal/domain/repositories"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *entities.Comment) (*entities.Comment, error) {
	commentModel := CommentModel{
		CreatedAt: comment.CreatedAt,
		Content:   comment.Content,
		UserId:    comment.UserId,
		PostId:    comment.PostId,
	}

	if err := r.db.Create(&commentModel).Error; err != nil {
		return nil, err
	}

	created := r.mapToEntity(&commentModel)
	return created, nil
}

func (r *CommentRepository) FindByPostId(postId uint) ([]entities.Comment, error) {
	var commentModels []CommentModel
	if err := r.db.Where("post_id = ?", postId).Order("id ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]entities.Comment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, *r.mapToEntity(&commentModels[i]))
	}
	return comments, nil
}

func (r *CommentRepository) mapToEntity(commentModel *CommentModel) *entities.Comment {
	return &entities.Comment{
		Id:        commentModel.Id,
		CreatedAt: commentModel.CreatedAt,
		Content:   commentModel.Content,
		UserId:    commentModel.UserId,
		PostId:    commentModel.PostId,
	}
}
