package services

import (
	"go.uber.org/zap"

	"purple-insta/internal/application/command"
	"purple-insta/internal/domain/entities"
	"purple-insta/internal/domain/repositories"
	"purple-insta/internal/util"
)

type FeedService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

func NewFeedService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost inserts unconditionally; empty content is accepted as-is.
func (s *FeedService) CreatePost(createCommand *command.CreatePostCommand) (*entities.Post, error) {
	newPost := entities.NewPost(createCommand.UserId, createCommand.Content)
	return s.postRepo.Create(newPost)
}

// ListPosts returns every post newest-first with its comments attached,
// recomputed fresh on each call.
func (s *FeedService) ListPosts() ([]entities.Post, error) {
	posts, err := s.postRepo.ListNewestFirst()
	if err != nil {
		return nil, err
	}

	for i := range posts {
		comments, err := s.commentRepo.FindByPostId(posts[i].Id)
		if err != nil {
			return nil, err
		}
		posts[i].Comments = comments
	}

	return posts, nil
}

// LikePost increments the counter by exactly one. Liking a post that does
// not exist is a silent no-op.
func (s *FeedService) LikePost(postId uint) error {
	return s.postRepo.IncrementLikes(postId)
}

func (s *FeedService) AddComment(addCommand *command.AddCommentCommand) (*entities.Comment, error) {
	exists, err := s.postRepo.Exists(addCommand.PostId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	newComment := entities.NewComment(addCommand.UserId, addCommand.PostId, addCommand.Content)
	created, err := s.commentRepo.Create(newComment)
	if err != nil {
		return nil, err
	}

	util.Logger.Debug("comment added", zap.Uint("post_id", addCommand.PostId))
	return created, nil
}
