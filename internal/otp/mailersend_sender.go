package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

// MailerSendSender delivers codes by email for operators whose phone number
// maps to a known mailbox. Address resolution is left to configuration; the
// phone digits become the local part of the desk's relay domain.
type MailerSendSender struct {
	client      *mailersend.Mailersend
	from        mailersend.From
	relayDomain string
	enabled     bool
}

func NewMailerSendSender(apiKey, fromName, fromEmail, relayDomain string) *MailerSendSender {
	m := &MailerSendSender{
		enabled:     apiKey != "" && fromEmail != "",
		relayDomain: relayDomain,
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendSender) SendCode(phone, code string, expiresAt time.Time) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subject := "Your booking desk access code"
	html := fmt.Sprintf(`
		<h2>Booking Desk Access Code</h2>
		<p>Your one-time code is: <strong style="font-size: 24px;">%s</strong></p>
		<p>It expires at %s.</p>
	`, code, expiresAt.Format(time.RFC1123))
	text := fmt.Sprintf("Your one-time code is: %s\nIt expires at %s.", code, expiresAt.Format(time.RFC1123))

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: fmt.Sprintf("%s@%s", phone, m.relayDomain)}})
	msg.SetSubject(subject)
	msg.SetText(text)
	msg.SetHTML(html)

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
