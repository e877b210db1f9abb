package command

import (
	"purple-insta/internal/application/common"
)

type RegisterUserCommand struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
	ZipCode  string `form:"zip_code"`
}

type RegisterUserCommandResult struct {
	Result *common.UserResult
}
