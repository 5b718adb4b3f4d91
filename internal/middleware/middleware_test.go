package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/eventsphere/internal/config"
	"github.com/iliyamo/eventsphere/internal/model"
	"github.com/iliyamo/eventsphere/internal/session"
	"github.com/iliyamo/eventsphere/internal/utils"
)

const secret = "test-secret"

func whoami(c echo.Context) error {
	s, ok := session.FromContext(c.Request().Context())
	if !ok {
		return c.String(http.StatusOK, "none")
	}
	return c.String(http.StatusOK, s.AccountID+"/"+s.Role)
}

func bearer(t *testing.T, id, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(secret, id, id+"@gmail.com", role, 5)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

func serve(e *echo.Echo, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSessionAuthAndRequireRole(t *testing.T) {
	e := echo.New()
	e.GET("/me", whoami, SessionAuth(secret))
	e.GET("/admin", whoami, SessionAuth(secret), RequireRole(model.RoleAdmin))

	tests := []struct {
		path, auth string
		wantCode   int
		wantBody   string
	}{
		{"/me", "", http.StatusUnauthorized, "Authentication required"},
		{"/me", "Bearer garbage", http.StatusUnauthorized, "Invalid or expired session"},
		{"/me", "Basic abc", http.StatusUnauthorized, "Authentication required"},
		{"/me", bearer(t, "u1", model.RoleUser), http.StatusOK, "u1/user"},
		{"/admin", bearer(t, "u1", model.RoleUser), http.StatusForbidden, "Forbidden"},
		{"/admin", bearer(t, "a1", model.RoleAdmin), http.StatusOK, "a1/admin"},
	}
	for _, tt := range tests {
		rec := serve(e, http.MethodGet, tt.path, tt.auth)
		assert.Equal(t, tt.wantCode, rec.Code, tt.path)
		assert.Contains(t, rec.Body.String(), tt.wantBody, tt.path)
	}
}

func TestRequireRoleWithoutSession(t *testing.T) {
	e := echo.New()
	e.GET("/admin", whoami, RequireRole(model.RoleAdmin))
	rec := serve(e, http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDisabledCacheAndRateLimitPassThrough(t *testing.T) {
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	e := echo.New()
	e.GET("/x", whoami,
		ResponseCache(config.CacheConfig{Enabled: true}, nil, log),
		RateLimit(config.RateLimitConfig{Enabled: true}, nil, log))

	rec := serve(e, http.MethodGet, "/x", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestCacheKey(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "p", KeyStrategy: "route_query"}

	keyFor := func(target string, id string) string {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
		if id != "" {
			c.SetPath("/api/events/:id")
			c.SetParamNames("id")
			c.SetParamValues(id)
		} else {
			c.SetPath("/api/events")
		}
		return cacheKey(cfg, c)
	}

	a := keyFor("/api/events?category=Wedding", "")
	assert.True(t, strings.HasPrefix(a, "p:"))
	assert.Equal(t, a, keyFor("/api/events?category=Wedding", ""))
	assert.NotEqual(t, a, keyFor("/api/events?category=Party", ""))
	assert.NotEqual(t, keyFor("/api/events/1", "1"), keyFor("/api/events/2", "2"))
}

func TestCacheEntryRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodeEntry(http.StatusOK, hdr, []byte(`[1,2]`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodeEntry(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, `[1,2]`, string(body))

	_, _, _, ok = decodeEntry([]byte{0, 0, 0})
	assert.False(t, ok)
	_, _, _, ok = decodeEntry([]byte{0, 0, 0, 200, 0, 0, 1, 0})
	assert.False(t, ok)
}

func TestRecorderLimit(t *testing.T) {
	rec := &recorder{ResponseWriter: httptest.NewRecorder(), limit: 4}
	_, _ = rec.Write([]byte("abc"))
	_, _ = rec.Write([]byte("def"))
	assert.Equal(t, "abcd", rec.buf.String())
	assert.True(t, rec.truncated())
}

func TestRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/bookings")

	tests := []struct {
		strategy, want string
	}{
		{"ip", "rl:ip:10.0.0.1"},
		{"user", "rl:user:anon"},
		{"ip_route", "rl:ip:10.0.0.1:route:POST /api/bookings"},
		{"", "rl:ip:10.0.0.1:user:anon:route:POST /api/bookings"},
	}
	for _, tt := range tests {
		got := rateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: tt.strategy}, c)
		assert.Equal(t, tt.want, got, tt.strategy)
	}

	c.SetRequest(req.WithContext(session.NewContext(req.Context(), session.Session{AccountID: "acc1"})))
	assert.Equal(t, "rl:user:acc1", rateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}, c))
}

func TestMetricsAndAccessLog(t *testing.T) {
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	e := echo.New()
	e.Use(AccessLog(slog.New(slog.NewJSONHandler(&logs, nil))), m.Middleware())
	e.GET("/ok", whoami)
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) })

	serve(e, http.MethodGet, "/ok", "")
	serve(e, http.MethodGet, "/ok", "")
	serve(e, http.MethodGet, "/boom", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/boom", "418")))
	assert.Contains(t, logs.String(), `"route":"/ok"`)
	assert.Contains(t, logs.String(), `"status":418`)
}
