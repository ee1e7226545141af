// Package requestmeta binds per-request metadata to the request context.
// All downstream consumers (handlers, the admin audit layer) read these values
// through pkg/requestcontext instead of reaching back into *http.Request.
package requestmeta

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"taskhub/pkg/requestcontext"
)

const (
	// HeaderActorID carries the caller-declared identity. It is set by the
	// authentication layer in front of this service and is not verified here.
	HeaderActorID = "User-ID"
	// HeaderRequestID correlates log lines for one request.
	HeaderRequestID = "X-Request-ID"
)

// Middleware captures actor id, full request URL, request id, request time and
// client metadata at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := r.Context()
		ctx = requestcontext.WithTime(ctx, time.Now())
		ctx = requestcontext.WithRequestID(ctx, requestID)
		ctx = requestcontext.WithActorID(ctx, r.Header.Get(HeaderActorID))
		ctx = requestcontext.WithRequestURL(ctx, RequestURL(r))
		ctx = requestcontext.WithClientMetadata(ctx, ClientIPFromRequest(r), describeUserAgent(r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestURL reconstructs the URL the client used: scheme, host and path.
// The query string is not included.
func RequestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	host := r.Host
	if host == "" {
		host = r.URL.Host
	}
	return scheme + "://" + host + r.URL.Path
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port", or "[::1]:port" for IPv6
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}

func describeUserAgent(raw string) string {
	if raw == "" {
		return ""
	}
	ua := useragent.New(raw)
	if ua.Bot() {
		return "bot"
	}
	name, version := ua.Browser()
	desc := strings.TrimSpace(name + " " + version)
	if os := ua.OS(); os != "" {
		desc += " (" + os + ")"
	}
	return desc
}
