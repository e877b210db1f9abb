package db

import (
	"errors"

	"gorm.io/gorm"

	"purple-insta/internal/domain/entities"
	"purple-insta/internal/domain/repositories"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *entities.Post) (*entities.Post, error) {
	postModel := PostModel{
		CreatedAt: post.CreatedAt,
		Content:   post.Content,
		UserId:    post.UserId,
	}

	if err := r.db.Create(&postModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(postModel.Id)
}

func (r *PostRepository) FindById(id uint) (*entities.Post, error) {
	var postModel PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) ListNewestFirst() ([]entities.Post, error) {
	var postModels []PostModel
	if err := r.db.Order("id DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]entities.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, *r.mapToEntity(&postModels[i]))
	}
	return posts, nil
}

// IncrementLikes is a single UPDATE so concurrent likes never lose counts.
// Zero rows affected means the post does not exist; that is deliberately
// not an error.
func (r *PostRepository) IncrementLikes(id uint) error {
	return r.db.Model(&PostModel{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
}

func (r *PostRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&PostModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostRepository) mapToEntity(postModel *PostModel) *entities.Post {
	return &entities.Post{
		Id:        postModel.Id,
		CreatedAt: postModel.CreatedAt,
		Content:   postModel.Content,
		UserId:    postModel.UserId,
		Likes:     postModel.Likes,
	}
}
