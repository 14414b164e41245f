package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrgsms-backend/internal/auth"
	"hrgsms-backend/internal/config"
	"hrgsms-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGate(t *testing.T, allowed ...domain.Role) (*gin.Engine, *auth.Verifier) {
	t.Helper()
	v, err := auth.NewVerifier("test-secret", "HS256")
	require.NoError(t, err)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/guarded", RequireRoles(v, allowed...), func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"sub": p.Subject, "role": p.Role})
	})
	return r, v
}

func doGet(r http.Handler, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["request_id"])
	detail, _ := body["detail"].(string)
	return detail
}

func TestRequireRolesMissingToken(t *testing.T) {
	r, _ := newGate(t, domain.RoleAdmin)

	for _, header := range []string{"", "Basic abc", "Bearer "} {
		w := doGet(r, "/guarded", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "Not authenticated", detailOf(t, w))
	}
}

func TestRequireRolesInvalidToken(t *testing.T) {
	r, _ := newGate(t, domain.RoleAdmin)

	other, err := auth.NewVerifier("other-secret", "HS256")
	require.NoError(t, err)
	forged, err := other.Issue("mallory", domain.RoleAdmin, time.Minute)
	require.NoError(t, err)

	w := doGet(r, "/guarded", "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Could not validate credentials", detailOf(t, w))

	w = doGet(r, "/guarded", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesForbidden(t *testing.T) {
	r, v := newGate(t, domain.RoleAdmin, domain.RoleManager)

	for _, role := range []domain.Role{domain.RoleReception, domain.RoleStaff, domain.Role("")} {
		tok, err := v.Issue("bob", role, time.Minute)
		require.NoError(t, err)
		w := doGet(r, "/guarded", "Bearer "+tok)
		assert.Equal(t, http.StatusForbidden, w.Code, "role %q", role)
		assert.Equal(t, "Insufficient permissions", detailOf(t, w))
	}
}

func TestRequireRolesAllowed(t *testing.T) {
	r, v := newGate(t, domain.RoleAdmin, domain.RoleManager)
	tok, err := v.Issue("alice", domain.RoleManager, time.Minute)
	require.NoError(t, err)

	w := doGet(r, "/guarded", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sub":"alice","role":"Manager"}`, w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := doGet(r, "/", "")
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 100))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Len(t, w.Body.String(), 36)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS("http://localhost:5173/, https://hotel.example.com"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://hotel.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://hotel.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(config.RateLimit{Enabled: true, Capacity: 1}, nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doGet(r, "/", "").Code)
	}
}

func TestRateKey(t *testing.T) {
	var got string
	cfg := config.RateLimit{Prefix: "hrgsms:rl", KeyStrategy: "ip_user_route"}
	r := gin.New()
	r.GET("/reservations/:id/checkin", func(c *gin.Context) {
		c.Set(principalKey, domain.Principal{Subject: "alice", Role: domain.RoleAdmin})
		got = rateKey(cfg, c)
	})
	req := httptest.NewRequest(http.MethodGet, "/reservations/9/checkin", nil)
	req.RemoteAddr = "10.0.0.5:5555"
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "hrgsms:rl:ip:10.0.0.5:user:alice:route:GET /reservations/:id/checkin", got)

	cfg.KeyStrategy = "ip"
	r = gin.New()
	r.GET("/", func(c *gin.Context) { got = rateKey(cfg, c) })
	r.ServeHTTP(httptest.NewRecorder(), requestFrom("/", "10.0.0.6:1"))
	assert.Equal(t, "hrgsms:rl:ip:10.0.0.6", got)
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(999))
	assert.Equal(t, 2, retryAfterSeconds(1001))
}

func requestFrom(path, remote string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remote
	return req
}
