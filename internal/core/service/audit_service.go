package service

import (
	"context"

	"github.com/ujsag/newspress/internal/core/domain"
	"github.com/ujsag/newspress/internal/core/ports"
)

const defaultActivityLimit = 50

type auditService struct {
	repo ports.AuditRepository
}

// NewAuditService returns the read side of the audit trail.
func NewAuditService(repo ports.AuditRepository) ports.AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) RecentActivity(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultActivityLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
