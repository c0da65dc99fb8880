package services

import (
	"fmt"

	"newshub-backend/models"

	"gopkg.in/gomail.v2"
)

// Mailer delivers a volunteer message. Delivery is fire-and-forget per
// request: no queue, no retry.
type Mailer interface {
	Send(msg models.VolunteerMessage) error
}

// SMTPMailer relays volunteer messages to a fixed recipient over SMTP.
type SMTPMailer struct {
	dialer    *gomail.Dialer
	from      string
	recipient string
}

func NewSMTPMailer(host string, port int, username, password, recipient string) *SMTPMailer {
	return &SMTPMailer{
		dialer:    gomail.NewDialer(host, port, username, password),
		from:      username,
		recipient: recipient,
	}
}

func (m *SMTPMailer) Send(msg models.VolunteerMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.recipient)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", fmt.Sprintf("Volunteer message from %s", msg.Name))
	mail.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", msg.Name, msg.Email, msg.Message))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
