package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/pkg/requestcontext"
)

func TestMiddleware_BindsRequestValues(t *testing.T) {
	var (
		actor, url, requestID string
		sawTime               bool
	)
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actor = requestcontext.ActorID(ctx)
		url = requestcontext.RequestURL(ctx)
		requestID = requestcontext.RequestID(ctx)
		_, sawTime = ctx.Value(requestcontext.ContextKeyRequestTime).(time.Time)
	}))

	req := httptest.NewRequest(http.MethodPatch, "http://tasks.example.com/admin/users/7?debug=1", nil)
	req.Header.Set(HeaderActorID, "3")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "3", actor)
	assert.Equal(t, "http://tasks.example.com/admin/users/7", url)
	require.NotEmpty(t, requestID)
	assert.Equal(t, requestID, rec.Header().Get(HeaderRequestID))
	assert.True(t, sawTime, "request time should be pinned")
}

func TestMiddleware_MissingActorStaysEmpty(t *testing.T) {
	var actor = "unset"
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = requestcontext.ActorID(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/comments/9", nil))

	assert.Equal(t, "", actor)
}

func TestMiddleware_PreservesIncomingRequestID(t *testing.T) {
	var requestID string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = requestcontext.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-123", requestID)
}

func TestRequestURL(t *testing.T) {
	t.Run("tls request uses https", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://api.local/admin/comments/9", nil)
		req.TLS = &tls.ConnectionState{}
		assert.Equal(t, "https://api.local/admin/comments/9", RequestURL(req))
	})

	t.Run("forwarded proto wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://api.local/admin/comments/9", nil)
		req.Header.Set("X-Forwarded-Proto", "HTTPS, http")
		assert.Equal(t, "https://api.local/admin/comments/9", RequestURL(req))
	})
}

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "first forwarded address", headers: map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, want: "10.0.0.1"},
		{name: "real ip header", headers: map[string]string{"X-Real-IP": " 10.0.0.9 "}, want: "10.0.0.9"},
		{name: "remote addr without port", remote: "192.168.1.4:5555", want: "192.168.1.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(req))
		})
	}
}
