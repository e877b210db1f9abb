package command

import (
	"purple-insta/internal/domain/entities"
)

type ContactRepCommand struct {
	RepName  string
	RepEmail string `form:"rep_email"`
	Message  string `form:"message"`
}

type ContactRepCommandResult struct {
	Receipt      *entities.ContactReceipt
	Confirmation string
}
