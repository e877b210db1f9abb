package infrastructure

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"purple-insta/internal/util"
)

// MailService delivers contact-representative messages through sendgrid
// when an API key is configured. Without one, Enabled reports false and
// messages are acknowledged without delivery.
type MailService struct {
	apiKey string
	sender string
}

func NewMailService(apiKey, sender string) *MailService {
	return &MailService{
		apiKey: apiKey,
		sender: sender,
	}
}

func (m *MailService) Enabled() bool {
	return m.apiKey != "" && m.sender != ""
}

func (m *MailService) Send(toName, toEmail, subject, body string) error {
	from := mail.NewEmail("Purple Insta", m.sender)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, body, fmt.Sprintf("<p>%s</p>", body))
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		util.Logger.Error("failed to send contact email", zap.Error(err))
		return err
	}

	util.Logger.Info("contact email sent", zap.Int("status", response.StatusCode))
	return nil
}
