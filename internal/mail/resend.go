// Package mail adapts email delivery providers to contact.Sender.
package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kirusanth290/portfolio/internal/contact"
)

var tracer = otel.Tracer("github.com/kirusanth290/portfolio/internal/mail")

// ResendSender delivers email through the Resend HTTP API
type ResendSender struct {
	client *resend.Client
}

var _ contact.Sender = (*ResendSender)(nil)

// NewResendSender creates a sender for apiKey. baseURL overrides the API
// endpoint and may be empty.
func NewResendSender(apiKey, baseURL string) (*ResendSender, error) {
	client := resend.NewClient(apiKey)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}

	return &ResendSender{client: client}, nil
}

// Send submits one email and returns the Resend message ID
func (s *ResendSender) Send(ctx context.Context, email contact.Email) (string, error) {
	ctx, span := tracer.Start(ctx, "resend.Send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTML,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("resend: %w", err)
	}

	// Only a reported error counts as a failure; a reply without an ID is still a send
	var id string
	if sent != nil {
		id = sent.Id
	}
	span.SetAttributes(attribute.String("email.id", id))
	return id, nil
}
