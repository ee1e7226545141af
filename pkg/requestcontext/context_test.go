package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ActorID(ctx))
	assert.Empty(t, RequestURL(ctx))
	assert.Empty(t, RequestID(ctx))
	_, ok := Time(ctx)
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := WithActorID(context.Background(), "3")
	ctx = WithRequestURL(ctx, "http://localhost/admin/users/7")
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithClientMetadata(ctx, "10.0.0.1", "curl")
	ctx = WithTime(ctx, at)

	assert.Equal(t, "3", ActorID(ctx))
	assert.Equal(t, "http://localhost/admin/users/7", RequestURL(ctx))
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "10.0.0.1", ClientIP(ctx))
	assert.Equal(t, "curl", UserAgent(ctx))
	got, ok := Time(ctx)
	assert.True(t, ok)
	assert.Equal(t, at, got)
}
