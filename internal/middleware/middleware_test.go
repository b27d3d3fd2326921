package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- RequestID ---

func TestRequestID_Generated(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())

	var seen string
	r.GET("/", func(c *ginext.Context) {
		seen = logger.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := serve(r, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

// --- Recovery ---

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Recovery(newTestLogger(t)))
	r.GET("/panic", func(*ginext.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := serve(r, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error","request_id":"req-42"}`, w.Body.String())
}

func TestRecovery_ClientGone(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/abort", func(*ginext.Context) { panic(http.ErrAbortHandler) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/abort", nil))

	assert.Empty(t, w.Body.String())
}

// --- Authenticate ---

type stubParser struct{}

func (stubParser) Parse(raw string) (*domain.Principal, error) {
	if raw == "good" {
		return &domain.Principal{ID: "u1", Role: domain.RoleOrganizer}, nil
	}
	return nil, auth.ErrInvalidToken
}

func authRouter(t *testing.T, seen **domain.Principal) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.Use(Authenticate(stubParser{}))
	r.GET("/", func(c *ginext.Context) {
		*seen = auth.PrincipalFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticate_Anonymous(t *testing.T) {
	var seen *domain.Principal
	r := authRouter(t, &seen)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, seen)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	var seen *domain.Principal
	r := authRouter(t, &seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.ID)
}

func TestAuthenticate_Rejected(t *testing.T) {
	for name, header := range map[string]string{
		"bad token":    "Bearer expired",
		"wrong scheme": "Basic dXNlcjpwYXNz",
		"empty token":  "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			var seen *domain.Principal
			r := authRouter(t, &seen)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)
			w := serve(r, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Nil(t, seen)
		})
	}
}

// --- RateLimit ---

type fakeCounter struct {
	hits map[string]int64
	err  error
}

func (f *fakeCounter) Hit(_ context.Context, key string, _ time.Duration, _ time.Time) (int64, time.Duration, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	f.hits[key]++
	return f.hits[key], 30 * time.Second, nil
}

func TestRateLimit(t *testing.T) {
	counter := &fakeCounter{hits: map[string]int64{}}
	r := ginext.New("test")
	r.Use(RateLimit(counter, 2, time.Minute, newTestLogger(t)))
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_FailOpen(t *testing.T) {
	counter := &fakeCounter{err: errors.New("redis down")}
	r := ginext.New("test")
	r.Use(RateLimit(counter, 1, time.Minute, newTestLogger(t)))
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
