package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/audit"
)

const schema = `
CREATE TABLE IF NOT EXISTS admin_audit_log (
	id           UUID PRIMARY KEY,
	kind         TEXT NOT NULL,
	api_group    TEXT NOT NULL,
	operation    TEXT NOT NULL,
	actor_id     TEXT NOT NULL,
	requested_at TIMESTAMPTZ,
	request_url  TEXT NOT NULL DEFAULT '',
	payload      TEXT NOT NULL DEFAULT '',
	result       TEXT NOT NULL DEFAULT '',
	request_id   TEXT NOT NULL DEFAULT '',
	trace_id     TEXT NOT NULL DEFAULT '',
	line         TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store appends admin audit records to the admin_audit_log table.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the audit table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create admin_audit_log: %w", err)
	}
	return nil
}

// Write inserts one record. Response records have no request time.
func (s *Store) Write(ctx context.Context, record audit.Record) error {
	var requestedAt sql.NullTime
	if !record.Timestamp.IsZero() {
		requestedAt = sql.NullTime{Time: record.Timestamp, Valid: true}
	}

	query := `
		INSERT INTO admin_audit_log (
			id, kind, api_group, operation, actor_id, requested_at,
			request_url, payload, result, request_id, trace_id, line, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.New(),
		string(record.Kind),
		record.Group,
		record.Operation,
		record.ActorID,
		requestedAt,
		record.RequestURL,
		record.Payload,
		record.Result,
		record.RequestID,
		record.TraceID,
		record.Line(),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert admin audit record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit of the newest records, oldest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Record, error) {
	query := `
		SELECT kind, api_group, operation, actor_id, requested_at,
		       request_url, payload, result, request_id, trace_id
		FROM admin_audit_log
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query admin audit records: %w", err)
	}
	defer rows.Close()

	var records []audit.Record
	for rows.Next() {
		var (
			r           audit.Record
			kind        string
			requestedAt sql.NullTime
		)
		if err := rows.Scan(&kind, &r.Group, &r.Operation, &r.ActorID, &requestedAt,
			&r.RequestURL, &r.Payload, &r.Result, &r.RequestID, &r.TraceID); err != nil {
			return nil, fmt.Errorf("scan admin audit record: %w", err)
		}
		r.Kind = audit.Kind(kind)
		if requestedAt.Valid {
			r.Timestamp = requestedAt.Time
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin audit records: %w", err)
	}
	slices.Reverse(records)
	return records, nil
}
