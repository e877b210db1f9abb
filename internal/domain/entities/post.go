package entities

import "time"

// Post is a short text update. Likes only ever go up; posts are never
// edited or deleted. Comments are attached by the feed service when the
// post is assembled for display.
type Post struct {
	Id        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
	UserId    uint      `json:"user_id"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
}

func NewPost(userId uint, content string) *Post {
	return &Post{
		CreatedAt: time.Now(),
		Content:   content,
		UserId:    userId,
	}
}
