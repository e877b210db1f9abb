package services

import "errors"

var (
	ErrDuplicateHandle    = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTooManyAttempts    = errors.New("too many login attempts, please try again later")
	ErrNoZipCode          = errors.New("no zip code on file")
	ErrPostNotFound       = errors.New("post not found")
)
