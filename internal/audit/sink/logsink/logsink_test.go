package logsink

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/audit"
)

func TestSink_WritesRenderedLineWithAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	sink := New(logger)

	record := audit.Record{
		Kind:      audit.KindResponse,
		Group:     "Comment Admin API",
		Operation: "deleteComment",
		ActorID:   "5",
		Result:    "no content",
		RequestID: "req-42",
	}
	require.NoError(t, sink.Write(context.Background(), record))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Comment Admin API Response: deleteComment, User ID: 5, Response: no content", entry["msg"])
	assert.Equal(t, "response", entry["audit_kind"])
	assert.Equal(t, "deleteComment", entry["operation"])
	assert.Equal(t, "5", entry["actor_id"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.NotContains(t, entry, "trace_id")
}
