package entities

import "time"

type Comment struct {
	Id        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
	UserId    uint      `json:"user_id"`
	PostId    uint      `json:"post_id"`
}

func NewComment(userId, postId uint, content string) *Comment {
	return &Comment{
		CreatedAt: time.Now(),
		Content:   content,
		UserId:    userId,
		PostId:    postId,
	}
}
