package contact

import (
	"context"
	"fmt"

	"github.com/kirusanth290/portfolio/internal/sanitization"
)

const (
	DefaultRecipient = "kirusanthpalakanthan5@gmail.com"
	DefaultSender    = "onboarding@resend.dev"
)

// Config is the process-wide contact configuration, resolved once at startup.
type Config struct {
	APIKey    string // credential for the delivery service
	Recipient string // inbox receiving submissions, DefaultRecipient when empty
	Sender    string // From address, DefaultSender when empty
}

func (c Config) recipient() string {
	if c.Recipient == "" {
		return DefaultRecipient
	}
	return c.Recipient
}

func (c Config) sender() string {
	if c.Sender == "" {
		return DefaultSender
	}
	return c.Sender
}

// Email is one outbound message handed to a Sender.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers one email and returns the provider's message ID.
type Sender interface {
	Send(ctx context.Context, email Email) (string, error)
}

const emailLayout = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
  <hr style="border-top: 1px solid #ddd; margin: 20px 0;" />
  <p>%s</p>
  <hr style="border-top: 1px solid #ddd; margin: 20px 0;" />
  <p style="font-size: 12px; color: #666;">
    Sent from your portfolio contact form.
  </p>
</div>
`

// BuildEmail renders the notification for sub. All user fields are escaped
// before they reach the HTML body.
func BuildEmail(cfg Config, sub Submission) Email {
	name := sanitization.EscapeHTML(sub.Name)
	email := sanitization.EscapeHTML(sub.Email)

	return Email{
		From:    cfg.sender(),
		To:      cfg.recipient(),
		ReplyTo: sub.Email,
		Subject: "New Contact Form Submission from " + sanitization.SingleLine(sub.Name),
		HTML:    fmt.Sprintf(emailLayout, name, email, email, sanitization.MultilineHTML(sub.Message)),
	}
}
