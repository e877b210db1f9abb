package command

type AddCommentCommand struct {
	UserId  uint
	PostId  uint
	Content string `form:"content"`
}
