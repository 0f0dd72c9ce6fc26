// Package mailer sends the outbound notification email for signup
// verification and application events over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender is what handlers depend on; tests swap in a fake.
type Sender interface {
	Send(to, subject, body string) error
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("no recipient specified")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
