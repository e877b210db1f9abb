package db

import (
	"time"
)

type UserModel struct {
	Id        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	ZipCode   string `gorm:"size:10"`
}

func (UserModel) TableName() string {
	return "users"
}

type PostModel struct {
	Id        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Content   string `gorm:"type:text;not null"`
	UserId    uint   `gorm:"not null;index"`
	Likes     int    `gorm:"not null;default:0"`
}

func (PostModel) TableName() string {
	return "posts"
}

type CommentModel struct {
	Id        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Content   string `gorm:"type:text;not null"`
	UserId    uint   `gorm:"not null;index"`
	PostId    uint   `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "comments"
}
