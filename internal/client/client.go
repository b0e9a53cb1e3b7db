// Package client submits contact messages to a running portfolio site the
// same way the browser form does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/kirusanth290/portfolio/internal/logging"
)

// Texts shown to the person submitting the form
const (
	SentText    = "Message sent! I’ll get back to you soon."
	FailedText  = "Failed to send message."
	NetworkText = "Something went wrong."
)

// ContactPath is appended to the site base URL
const ContactPath = "/api/contact"

// Submission is the form payload
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Status is what the form displays after one round trip
type Status struct {
	OK   bool
	Text string
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *logging.Logger
}

// New creates a client for the site at baseURL. A nil httpClient means
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client, logger *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		endpoint:   strings.TrimRight(baseURL, "/") + ContactPath,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Submit posts one submission and waits for the single reply. It never retries.
func (c *Client) Submit(ctx context.Context, sub Submission) Status {
	body, err := json.Marshal(sub)
	if err != nil {
		c.logger.Error("Failed to encode submission: %v", err)
		return Status{Text: NetworkText}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to build request: %v", err)
		return Status{Text: NetworkText}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Contact request failed: %v", err)
		return Status{Text: NetworkText}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Status{OK: true, Text: SentText}
	}

	return Status{Text: errorText(resp.Body)}
}

// errorText pulls the "error" field out of a failure reply
func errorText(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Error == "" {
		return FailedText
	}
	return payload.Error
}
