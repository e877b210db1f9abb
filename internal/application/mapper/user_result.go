package mapper

import (
	"purple-insta/internal/application/common"
	"purple-insta/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user == nil {
		return nil
	}

	return &common.UserResult{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
		ZipCode:  user.ZipCode,
	}
}
