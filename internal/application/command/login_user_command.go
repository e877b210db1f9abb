package command

import (
	"purple-insta/internal/application/common"
)

type LoginUserCommand struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type LoginUserCommandResult struct {
	Token string
	User  *common.UserResult
}
