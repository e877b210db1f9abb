package command

type CreatePostCommand struct {
	UserId  uint
	Content string `form:"content"`
}
