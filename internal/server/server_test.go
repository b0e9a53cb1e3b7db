package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirusanth290/portfolio/internal/config"
	"github.com/kirusanth290/portfolio/internal/contact"
	"github.com/kirusanth290/portfolio/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSender struct {
	calls int
	err   error
	panic bool
}

func (s *stubSender) Send(ctx context.Context, email contact.Email) (string, error) {
	s.calls++
	if s.panic {
		panic("sender blew up")
	}
	if s.err != nil {
		return "", s.err
	}
	return "email-id", nil
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:         "test",
		Port:                "0",
		SiteURL:             "http://localhost:8080",
		AllowedOrigins:      "https://portfolio.example",
		LogLevel:            "info",
		ResendAPIKey:        "re_test",
		ContactEmail:        "owner@example.com",
		ContactSender:       "onboarding@resend.dev",
		ContactMaxBodyBytes: 1024,
	}
}

func newTestServer(t *testing.T, cfg *config.Config, sender contact.Sender) *Server {
	t.Helper()
	logger := logging.Discard()
	svc := contact.NewService(cfg.Contact(), sender, logger, nil)
	srv, err := NewServer(cfg, svc, logger)
	require.NoError(t, err)
	return srv
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

const validBody = `{"name":"Jane","email":"jane@example.com","message":"Hello"}`

func TestContactEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*config.Config)
		sender     *stubSender
		body       string
		wantStatus int
		wantBody   string
		wantCalls  int
	}{
		{
			name:       "sent",
			sender:     &stubSender{},
			body:       validBody,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Message sent successfully"}`,
			wantCalls:  1,
		},
		{
			name:       "missing name",
			sender:     &stubSender{},
			body:       `{"email":"jane@example.com","message":"Hello"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "invalid email",
			sender:     &stubSender{},
			body:       `{"name":"Jane","email":"not-an-email","message":"Hello"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid email address"}`,
		},
		{
			name:       "malformed json",
			sender:     &stubSender{},
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request"}`,
		},
		{
			name:       "empty body",
			sender:     &stubSender{},
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request"}`,
		},
		{
			name:       "body over limit",
			sender:     &stubSender{},
			body:       `{"name":"Jane","email":"jane@example.com","message":"` + strings.Repeat("a", 2048) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request"}`,
		},
		{
			name:       "not configured",
			mutate:     func(c *config.Config) { c.ResendAPIKey = "" },
			sender:     &stubSender{},
			body:       validBody,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Email service not configured"}`,
		},
		{
			name:       "delivery failed",
			sender:     &stubSender{err: errors.New("domain not verified")},
			body:       validBody,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to send email"}`,
			wantCalls:  1,
		},
		{
			name:       "unexpected panic",
			sender:     &stubSender{panic: true},
			body:       validBody,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request"}`,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			srv := newTestServer(t, cfg, tt.sender)

			w := do(srv, http.MethodPost, ContactEndpoint, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, tt.wantCalls, tt.sender.calls)
		})
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig(), &stubSender{})

	w := do(srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSitePages(t *testing.T) {
	srv := newTestServer(t, testConfig(), &stubSender{})

	tests := []struct {
		path string
		want string
	}{
		{"/", "About Me"},
		{"/projects", "Ride &amp; Pickup DBMS"},
		{"/contact", `data-endpoint="/api/contact"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(srv, http.MethodGet, tt.path, "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, w.Body.String(), tt.want)
			assert.Contains(t, w.Body.String(), "kirusanth")
		})
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, testConfig(), &stubSender{})

	for _, path := range []string{"/static/contact.js", "/static/theme.js", "/static/site.css"} {
		w := do(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.Environment = "production"
	srv := newTestServer(t, cfg, &stubSender{})
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	req := httptest.NewRequest(http.MethodOptions, ContactEndpoint, nil)
	req.Header.Set("Origin", "https://portfolio.example")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodPost, ContactEndpoint, strings.NewReader(validBody))
	req.Header.Set("Origin", "https://evil.test")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORSAllowsSiteOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.Environment = "production"
	cfg.SiteURL = "https://kirusanth.dev/"

	got := corsConfig(cfg)

	assert.False(t, got.Permissive)
	assert.Equal(t, []string{"https://portfolio.example", "https://kirusanth.dev"}, got.AllowedOrigins)
}
