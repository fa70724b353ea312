package ports

import (
	"context"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

// AuditService processes session events from the dispatcher and serves the
// recorded trail back to administrators.
type AuditService interface {
	Process(ctx context.Context, event domain.SessionEvent) error
	History(ctx context.Context, email string, limit int64) ([]domain.SessionEvent, error)
}

// AuditRepository persists session events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.SessionEvent) error
	FindByEmail(ctx context.Context, email string, limit int64) ([]domain.SessionEvent, error)
}

// AuditSink receives session events for asynchronous recording. A nil-safe
// no-op implementation is acceptable where auditing is disabled.
type AuditSink interface {
	Enqueue(event domain.SessionEvent)
}
