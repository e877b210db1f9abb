package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Representative is one elected official as returned by the civic
// information lookup, flattened from the office/official pair.
type Representative struct {
	Name     string   `json:"name"`
	Office   string   `json:"office"`
	Party    string   `json:"party"`
	Phones   []string `json:"phones"`
	Urls     []string `json:"urls"`
	Emails   []string `json:"emails"`
	PhotoUrl string   `json:"photoUrl,omitempty"`
}

// ContactReceipt acknowledges a contact-representative message. There is
// no guaranteed delivery behind it; it exists so the caller gets a stable
// reference for the message they submitted.
type ContactReceipt struct {
	Id        uuid.UUID `json:"id"`
	RepName   string    `json:"rep_name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactReceipt(repName, message string) *ContactReceipt {
	return &ContactReceipt{
		Id:        uuid.New(),
		RepName:   repName,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

func (r *ContactReceipt) Confirmation() string {
	return fmt.Sprintf("Message sent to %s: %s", r.RepName, r.Message)
}
