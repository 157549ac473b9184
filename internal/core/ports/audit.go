package ports

import (
	"context"
	"time"
)

// AuthEvent is one entry in the authentication audit trail. Result carries
// the internal failure reason (unknown_email, wrong_password,
// duplicate_email, success) that the API deliberately never surfaces.
type AuthEvent struct {
	Email  string
	Action string // "login" or "signup"
	Result string
	At     time.Time
}

// AuditSink accepts events for asynchronous recording.
type AuditSink interface {
	Enqueue(event AuthEvent)
}

// AuditRecorder persists a single audit event.
type AuditRecorder interface {
	Record(ctx context.Context, event AuthEvent) error
}
