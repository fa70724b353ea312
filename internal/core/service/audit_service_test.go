package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

type stubAuditRepo struct {
	inserted  []domain.SessionEvent
	events    []domain.SessionEvent
	lastEmail string
	lastLimit int64
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, event domain.SessionEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func (r *stubAuditRepo) FindByEmail(_ context.Context, email string, limit int64) ([]domain.SessionEvent, error) {
	r.lastEmail = email
	r.lastLimit = limit
	return append([]domain.SessionEvent{}, r.events...), nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := domain.SessionEvent{Email: "admin@demo.com", Role: domain.RoleAdmin, Action: domain.AuditLogin, Timestamp: time.Now().UTC()}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Action != domain.AuditLogin {
		t.Fatalf("event not persisted: %+v", repo.inserted)
	}
}

func TestAuditService_Process_InsertError(t *testing.T) {
	repo := &stubAuditRepo{insertErr: errors.New("write concern")}
	svc := NewAuditService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), domain.SessionEvent{Email: "admin@demo.com", Action: domain.AuditLogin})
	if err == nil {
		t.Fatalf("expected error from failed insert")
	}
}

func TestAuditService_History(t *testing.T) {
	repo := &stubAuditRepo{events: []domain.SessionEvent{
		{Email: "admin@demo.com", Action: domain.AuditLogout},
		{Email: "admin@demo.com", Action: domain.AuditLogin},
	}}
	svc := NewAuditService(repo, zerolog.Nop())

	events, err := svc.History(context.Background(), "admin@demo.com", 10)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if repo.lastEmail != "admin@demo.com" || repo.lastLimit != 10 {
		t.Fatalf("query not forwarded: %s %d", repo.lastEmail, repo.lastLimit)
	}
}

func TestAuditService_History_DefaultLimit(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	if _, err := svc.History(context.Background(), "admin@demo.com", 0); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if repo.lastLimit != defaultHistoryLimit {
		t.Fatalf("expected default limit %d, got %d", defaultHistoryLimit, repo.lastLimit)
	}
}
