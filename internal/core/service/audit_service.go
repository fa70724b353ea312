package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shivfurnitures/books-api/internal/api/metrics"
	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
)

const defaultHistoryLimit = 50

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists session events.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single session event.
func (s *auditService) Process(ctx context.Context, event domain.SessionEvent) error {
	start := time.Now()
	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("audit event: %w", err)
	}
	metrics.AuditProcessingDuration.WithLabelValues(event.Action).Observe(time.Since(start).Seconds())
	s.log.Debug().Str("email", event.Email).Str("action", event.Action).Msg("session event recorded")
	return nil
}

// History returns the most recent events for one subject, newest first.
func (s *auditService) History(ctx context.Context, email string, limit int64) ([]domain.SessionEvent, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	events, err := s.repo.FindByEmail(ctx, email, limit)
	if err != nil {
		return nil, fmt.Errorf("audit history: %w", err)
	}
	return events, nil
}
