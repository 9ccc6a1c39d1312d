package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_PublicPaths(t *testing.T) {
	handler := AuthMiddleware(testAPIKey, nil, NewSuspiciousActivityDetector())(okHandler())

	for _, path := range PublicPaths {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware(testAPIKey, nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reload", nil)
	req.RemoteAddr = "192.168.1.7:1234"
	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["192.168.1.7"])
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < RateLimitPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if !assert.Equal(t, http.StatusOK, rec.Code, "request %d", i) {
			return
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "10.0.0.5:80", "", nil, "10.0.0.5"},
		{"untrusted proxy ignored", "10.0.0.5:80", "1.2.3.4", nil, "10.0.0.5"},
		{"trusted proxy rightmost hop", "10.0.0.1:80", "9.9.9.9, 1.2.3.4", []string{"10.0.0.1"}, "1.2.3.4"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}
