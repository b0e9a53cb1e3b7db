package contact_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirusanth290/portfolio/internal/contact"
	"github.com/kirusanth290/portfolio/internal/logging"
)

// fakeSender records every email it is asked to deliver
type fakeSender struct {
	sent []contact.Email
	err  error
}

func (f *fakeSender) Send(ctx context.Context, email contact.Email) (string, error) {
	f.sent = append(f.sent, email)
	if f.err != nil {
		return "", f.err
	}
	return "msg_123", nil
}

type countingRecorder struct {
	outcomes []string
}

func (r *countingRecorder) RecordContactOutcome(ctx context.Context, outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func newService(cfg contact.Config, sender contact.Sender) *contact.Service {
	return contact.NewService(cfg, sender, logging.Discard(), nil)
}

var configured = contact.Config{APIKey: "re_test"}

func TestSubmit_HappyPath(t *testing.T) {
	sender := &fakeSender{}
	svc := newService(configured, sender)

	outcome := svc.Submit(context.Background(), []byte(`{"name":"Jane","email":"jane@example.com","message":"Hello\nWorld"}`))

	assert.Equal(t, contact.Sent, outcome)
	assert.Equal(t, http.StatusOK, outcome.Status())
	assert.Equal(t, "Message sent successfully", outcome.Message())

	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	assert.Equal(t, contact.DefaultSender, email.From)
	assert.Equal(t, "jane@example.com", email.ReplyTo)
	assert.Equal(t, "New Contact Form Submission from Jane", email.Subject)
	assert.Contains(t, email.HTML, "Jane")
	assert.Contains(t, email.HTML, `<a href="mailto:jane@example.com">jane@example.com</a>`)
	assert.Contains(t, email.HTML, "Hello<br />World")
}

func TestSubmit_ValidationOrdering(t *testing.T) {
	sender := &fakeSender{}
	svc := newService(configured, sender)

	tests := []struct {
		name string
		body string
		want contact.Outcome
	}{
		{"missing name", `{"email":"jane@example.com","message":"hi"}`, contact.MissingFields},
		{"empty name with bad email", `{"name":"","email":"nope","message":"hi"}`, contact.MissingFields},
		{"missing email", `{"name":"Jane","message":"hi"}`, contact.MissingFields},
		{"missing message", `{"name":"Jane","email":"jane@example.com"}`, contact.MissingFields},
		{"empty object", `{}`, contact.MissingFields},
		{"keys differ in case", `{"NAME":"Jane","EMAIL":"jane@example.com","MESSAGE":"hi"}`, contact.MissingFields},
		{"null name", `{"name":null,"email":"jane@example.com","message":"hi"}`, contact.MissingFields},
		{"unicode space in email", `{"name":"Jane","email":"jane\u00a0doe@example.com","message":"hi"}`, contact.InvalidEmail},
		{"vertical tab in email", `{"name":"Jane","email":"jane\u000bdoe@example.com","message":"hi"}`, contact.InvalidEmail},
		{"line separator in email", `{"name":"Jane","email":"jane\u2028x@example.com","message":"hi"}`, contact.InvalidEmail},
		{"bom in domain", `{"name":"Jane","email":"jane@exa\ufeffmple.com","message":"hi"}`, contact.InvalidEmail},
		{"bad email", `{"name":"Jane","email":"not-an-email","message":"hi"}`, contact.InvalidEmail},
		{"no tld", `{"name":"Jane","email":"a@b","message":"hi"}`, contact.InvalidEmail},
		{"no local part", `{"name":"Jane","email":"@b.com","message":"hi"}`, contact.InvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := svc.Submit(context.Background(), []byte(tt.body))
			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, http.StatusBadRequest, outcome.Status())
		})
	}

	assert.Empty(t, sender.sent, "rejected submissions must not be delivered")
}

func TestSubmit_MalformedBody(t *testing.T) {
	sender := &fakeSender{}
	svc := newService(configured, sender)

	bodies := []string{
		``,
		`not json`,
		`{"name":"Jane",`,
		`null`,
		`[]`,
		`"text"`,
		`{"name":42,"email":"jane@example.com","message":"hi"}`,
		`{"name":"Jane","email":["jane@example.com"],"message":"hi"}`,
	}

	for _, body := range bodies {
		outcome := svc.Submit(context.Background(), []byte(body))
		assert.Equal(t, contact.InvalidRequest, outcome, "body %q", body)
		assert.Equal(t, "Invalid request", outcome.Message())
	}

	assert.Empty(t, sender.sent)
}

func TestSubmit_MissingCredential(t *testing.T) {
	sender := &fakeSender{}
	svc := newService(contact.Config{Recipient: "me@example.com"}, sender)

	outcome := svc.Submit(context.Background(), []byte(`{"name":"Jane","email":"jane@example.com","message":"hi"}`))

	assert.Equal(t, contact.NotConfigured, outcome)
	assert.Equal(t, http.StatusInternalServerError, outcome.Status())
	assert.Equal(t, "Email service not configured", outcome.Message())
	assert.Empty(t, sender.sent, "sender must not be invoked without a credential")
}

func TestSubmit_ValidationRunsBeforeCredentialCheck(t *testing.T) {
	svc := newService(contact.Config{}, &fakeSender{})

	outcome := svc.Submit(context.Background(), []byte(`{"name":"Jane","email":"bad","message":"hi"}`))
	assert.Equal(t, contact.InvalidEmail, outcome)
}

func TestSubmit_RecipientFallback(t *testing.T) {
	body := []byte(`{"name":"Jane","email":"jane@example.com","message":"hi"}`)

	fallback := &fakeSender{}
	newService(configured, fallback).Submit(context.Background(), body)
	require.Len(t, fallback.sent, 1)
	assert.Equal(t, contact.DefaultRecipient, fallback.sent[0].To)

	custom := &fakeSender{}
	cfg := configured
	cfg.Recipient = "owner@example.com"
	newService(cfg, custom).Submit(context.Background(), body)
	require.Len(t, custom.sent, 1)
	assert.Equal(t, "owner@example.com", custom.sent[0].To)
}

func TestSubmit_DeliveryError(t *testing.T) {
	sender := &fakeSender{err: errors.New("validation_error: domain not verified")}
	recorder := &countingRecorder{}
	svc := contact.NewService(configured, sender, logging.Discard(), recorder)

	outcome := svc.Submit(context.Background(), []byte(`{"name":"Jane","email":"jane@example.com","message":"hi"}`))

	assert.Equal(t, contact.DeliveryFailed, outcome)
	assert.Equal(t, http.StatusInternalServerError, outcome.Status())
	assert.Equal(t, "Failed to send email", outcome.Message())
	assert.Len(t, sender.sent, 1, "no retries")
	assert.Equal(t, []string{"delivery_failed"}, recorder.outcomes)
}

func TestSubmit_DuplicateSubmissionsSendTwice(t *testing.T) {
	sender := &fakeSender{}
	svc := newService(configured, sender)
	body := []byte(`{"name":"Jane","email":"jane@example.com","message":"hi"}`)

	assert.Equal(t, contact.Sent, svc.Submit(context.Background(), body))
	assert.Equal(t, contact.Sent, svc.Submit(context.Background(), body))
	assert.Len(t, sender.sent, 2)
}

func TestSubmit_EscapesUserInput(t *testing.T) {
	sender := &fakeSender{}
	svc := newService(configured, sender)

	body := []byte(`{"name":"<b>Eve</b>","email":"eve\"><script>@example.com","message":"<img src=x onerror=alert(1)>\nbye"}`)
	outcome := svc.Submit(context.Background(), body)
	require.Equal(t, contact.Sent, outcome)

	html := sender.sent[0].HTML
	assert.NotContains(t, html, "<b>Eve</b>")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;b&gt;Eve&lt;/b&gt;")
	assert.Contains(t, html, "&lt;img src=x onerror=alert(1)&gt;<br />bye")
	assert.False(t, strings.Contains(html, `mailto:eve">`), "quote must not close the href attribute")
}
