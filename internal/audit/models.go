package audit

import (
	"fmt"
	"time"
)

// Kind distinguishes the two admin audit records.
type Kind string

const (
	// KindAccess is written before an audited operation runs.
	KindAccess Kind = "access"
	// KindResponse is written after an audited operation returns without error.
	KindResponse Kind = "response"
)

// FormatTimestamp renders a request time as an ISO-8601 local date-time.
// Seconds are omitted when they and the fraction are zero; the fraction is
// printed in groups of three digits.
func FormatTimestamp(t time.Time) string {
	ns := t.Nanosecond()
	switch {
	case ns == 0 && t.Second() == 0:
		return t.Format("2006-01-02T15:04")
	case ns == 0:
		return t.Format("2006-01-02T15:04:05")
	case ns%1_000_000 == 0:
		return t.Format("2006-01-02T15:04:05.000")
	case ns%1_000 == 0:
		return t.Format("2006-01-02T15:04:05.000000")
	default:
		return t.Format("2006-01-02T15:04:05.000000000")
	}
}

// Record is one admin audit entry. Access records populate Timestamp,
// RequestURL and Payload; response records populate Result.
type Record struct {
	Kind       Kind
	Group      string // "User Admin API" or "Comment Admin API"
	Operation  string
	ActorID    string
	Timestamp  time.Time
	RequestURL string
	Payload    string
	Result     string

	// Correlation fields; not part of the rendered line.
	RequestID string
	TraceID   string
}

// Line renders the record in its fixed human-readable template.
func (r Record) Line() string {
	if r.Kind == KindResponse {
		return fmt.Sprintf("%s Response: %s, User ID: %s, Response: %s",
			r.Group, r.Operation, r.ActorID, r.Result)
	}
	return fmt.Sprintf("%s Accessed: %s, User ID: %s, Request Time: %s, Request URL: %s, Request Body: %s",
		r.Group, r.Operation, r.ActorID, FormatTimestamp(r.Timestamp), r.RequestURL, r.Payload)
}

// Envelope is the JSON representation of a Record shared by remote sinks and
// the recent-records endpoint.
type Envelope struct {
	Kind        string `json:"kind"`
	Group       string `json:"group"`
	Operation   string `json:"operation"`
	ActorID     string `json:"actor_id"`
	RequestTime string `json:"request_time,omitempty"`
	RequestURL  string `json:"request_url,omitempty"`
	Payload     string `json:"payload,omitempty"`
	Result      string `json:"result,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
	TraceID     string `json:"trace_id,omitempty"`
	Line        string `json:"line"`
}

// Envelope converts the record for JSON transport.
func (r Record) Envelope() Envelope {
	env := Envelope{
		Kind:      string(r.Kind),
		Group:     r.Group,
		Operation: r.Operation,
		ActorID:   r.ActorID,
		Result:    r.Result,
		RequestID: r.RequestID,
		TraceID:   r.TraceID,
		Line:      r.Line(),
	}
	if r.Kind == KindAccess {
		env.RequestTime = FormatTimestamp(r.Timestamp)
		env.RequestURL = r.RequestURL
		env.Payload = r.Payload
	}
	return env
}
