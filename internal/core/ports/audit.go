package ports

import (
	"context"

	"github.com/ujsag/newspress/internal/core/domain"
)

// AuditRepository persists and reads back audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// ListRecent returns the newest entries first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

// AuditRecorder accepts mutation records for asynchronous persistence.
// Content services enqueue here; the queue dispatcher drains into the
// repository with per-entity ordering.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditService exposes the admin activity feed.
type AuditService interface {
	RecentActivity(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
