package testutil

import (
	"net/http"
	"time"

	"taskhub/pkg/requestcontext"
)

// WithActor binds an actor id to the request context the way the request
// metadata middleware does for the User-ID header.
func WithActor(req *http.Request, actorID string) *http.Request {
	return req.WithContext(requestcontext.WithActorID(req.Context(), actorID))
}

// WithRequestMeta binds actor, request URL, request id and request time.
func WithRequestMeta(req *http.Request, actorID, requestID string, at time.Time) *http.Request {
	ctx := req.Context()
	ctx = requestcontext.WithActorID(ctx, actorID)
	ctx = requestcontext.WithRequestURL(ctx, "http://"+req.Host+req.URL.Path)
	ctx = requestcontext.WithRequestID(ctx, requestID)
	ctx = requestcontext.WithTime(ctx, at)
	return req.WithContext(ctx)
}
