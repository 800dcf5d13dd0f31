package middlewares

import (
	"net/http"
	"net/http/httptest"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		Workspace: config.AppWorkspace{
			CookieName: "leads_workspace",
			TTLInHours: 12,
		},
	})
}

func TestWorkspaceMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares()

	var seen string
	handler := middlewares.Workspace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetWorkspaceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Issues Cookie For New Visitor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotEmpty(t, seen)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "leads_workspace", cookies[0].Name)
		assert.Equal(t, seen, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("Reuses Valid Cookie", func(t *testing.T) {
		workspaceID := utils.GenerateWorkspaceID()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "leads_workspace", Value: workspaceID})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, workspaceID, seen)
	})

	t.Run("Replaces Tampered Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "leads_workspace", Value: "../../etc"})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.NotEqual(t, "../../etc", seen)
		assert.NotEmpty(t, seen)
	})

	t.Run("Accepts Header Without Cookie", func(t *testing.T) {
		workspaceID := utils.GenerateWorkspaceID()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXWorkspaceID, workspaceID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, workspaceID, seen)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("Rejects Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXWorkspaceID, "not-a-uuid")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares()

	var seen string
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
	assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "client-id", seen)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	middlewares := newTestMiddlewares()
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, time.Minute, zap.NewNop())
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func() int {
		req := httptest.NewRequest(http.MethodPost, "/find-email", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, serve())
	assert.Equal(t, http.StatusOK, serve())
	assert.Equal(t, http.StatusTooManyRequests, serve())

	current = current.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, serve(), "still blocked")

	current = current.Add(31 * time.Second)
	assert.Equal(t, http.StatusOK, serve())
}
