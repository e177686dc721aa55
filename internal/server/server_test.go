package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/safebite/internal/app"
	"github.com/nfrund/safebite/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	// --- Setup ---
	e := echo.New()

	// 1. Capture log output
	// We temporarily redirect slog's output to a buffer to inspect it.
	var logBuffer bytes.Buffer
	// Create a new logger that writes to our buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	logger := slog.New(handler)
	// Store the original default logger and defer its restoration
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	// 2. Set up the error handler we want to test
	setupErrorHandling(e)

	// 3. Define a route that will always produce an unhandled error
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		// This is the kind of error that should trigger our stack trace logging.
		return errors.New("a deliberate unhandled error occurred")
	})

	// --- Act ---
	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// --- Assert ---
	// First, check that the HTTP response is correct (a 500 error)
	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	// Now, check the captured log output
	logOutput := logBuffer.String()

	// Assert that the log contains the key pieces of information
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")

	// A good stack trace will contain the path to the Go runtime and this test file.
	// This is a strong indicator that a real stack trace was captured.
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_HTTPErrorKeepsStatus(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)

	tests := []struct {
		name       string
		accept     string
		wantStatus int
		wantBody   string
	}{
		{"plain text", "", http.StatusNotFound, "Not Found"},
		{"json", echo.MIMEApplicationJSON, http.StatusNotFound, `"code":"not_found"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/missing", nil)
			if tt.accept != "" {
				req.Header.Set(echo.HeaderAccept, tt.accept)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Addr:               ":0",
		DefaultLocale:      "en",
		RenderCacheTTL:     time.Minute,
		RenderCacheMaxCost: 1 << 20,
		RateLimitPerMinute: 600,
		ShutdownTimeout:    time.Second,
	}
	s, err := New(app.NewContainer(cfg))
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		headers    map[string]string
		wantStatus int
		contains   string
		location   string
	}{
		{name: "root redirects to about", target: "/", wantStatus: http.StatusFound, location: "/about"},
		{name: "about english", target: "/about", wantStatus: http.StatusOK, contains: "About Us"},
		{name: "about korean", target: "/about?lang=ko", wantStatus: http.StatusOK, contains: "저희 소개"},
		{name: "htmx fragment", target: "/about?lang=ko", headers: map[string]string{"HX-Request": "true"}, wantStatus: http.StatusOK, contains: `<main id="about"`},
		{name: "content json", target: "/about/content?lang=en", wantStatus: http.StatusOK, contains: `"ourStory"`},
		{name: "stylesheet", target: "/static/about.css", wantStatus: http.StatusOK, contains: ".locale-tab"},
		{name: "health", target: "/health", wantStatus: http.StatusOK, contains: "OK"},
		{name: "unknown route", target: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

func TestServer_WarmsRenderCache(t *testing.T) {
	s := newTestServer(t)
	s.Deps.RenderCache.Wait()

	for _, key := range []string{"about:page:en", "about:page:ko", "about:fragment:en", "about:fragment:ko"} {
		_, ok := s.Deps.RenderCache.Get(key)
		assert.True(t, ok, "expected %s to be cached", key)
	}
}
