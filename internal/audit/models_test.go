package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ns   int
		sec  int
		want string
	}{
		{"whole minute drops seconds", 0, 0, "2024-05-17T09:03"},
		{"whole second", 0, 7, "2024-05-17T09:03:07"},
		{"millis", 120_000_000, 7, "2024-05-17T09:03:07.120"},
		{"sub-micro fraction", 123_400_000 + 500, 7, "2024-05-17T09:03:07.123400500"},
		{"micros exact", 123_456_000, 0, "2024-05-17T09:03:00.123456"},
		{"nanos", 5, 7, "2024-05-17T09:03:07.000000005"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := time.Date(2024, 5, 17, 9, 3, tt.sec, tt.ns, time.UTC)
			assert.Equal(t, tt.want, FormatTimestamp(ts))
		})
	}
}

func TestRecordLine(t *testing.T) {
	ts := time.Date(2024, 5, 17, 9, 3, 7, 123000000, time.UTC)

	access := Record{
		Kind:       KindAccess,
		Group:      "User Admin API",
		Operation:  "changeUserRole",
		ActorID:    "3",
		Timestamp:  ts,
		RequestURL: "http://localhost:8080/admin/users/7",
		Payload:    "UserRoleChangeRequest{role=ADMIN}",
	}
	assert.Equal(t,
		"User Admin API Accessed: changeUserRole, User ID: 3, Request Time: 2024-05-17T09:03:07.123, "+
			"Request URL: http://localhost:8080/admin/users/7, Request Body: UserRoleChangeRequest{role=ADMIN}",
		access.Line())

	response := Record{
		Kind:      KindResponse,
		Group:     "User Admin API",
		Operation: "changeUserRole",
		ActorID:   "3",
		Result:    "no content",
	}
	assert.Equal(t, "User Admin API Response: changeUserRole, User ID: 3, Response: no content", response.Line())
}
