package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/shivfurnitures/books-api/internal/api/metrics"
	"github.com/shivfurnitures/books-api/internal/core/domain"
	"github.com/shivfurnitures/books-api/internal/core/ports"
	"github.com/shivfurnitures/books-api/internal/core/rules"
)

// SessionService holds the current authenticated identity and implements
// login, logout, and startup restore against a single-key cache.
//
// A generation counter guards the simulated login latency: logout (and any
// newer login) bumps the generation, so a login that finishes its delay
// with a stale generation is discarded instead of overwriting a deliberate
// logout.
type SessionService struct {
	repo       ports.SessionRepository
	source     ports.CatalogSource
	audit      ports.AuditSink
	jwtSecret  string
	tokenTTL   time.Duration
	loginDelay time.Duration
	logger     zerolog.Logger

	mu          sync.Mutex
	current     *domain.Identity
	loading     bool
	generation  uint64
	subscribers []func(*domain.Identity)
}

func NewSessionService(
	repo ports.SessionRepository,
	source ports.CatalogSource,
	audit ports.AuditSink,
	jwtSecret string,
	tokenTTL time.Duration,
	loginDelay time.Duration,
	logger zerolog.Logger,
) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		repo:       repo,
		source:     source,
		audit:      audit,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		loginDelay: loginDelay,
		logger:     logger,
		loading:    true,
	}
}

// Current returns the identity (nil when unauthenticated) and the loading
// flag. Callers must suspend role-based decisions while loading is true.
func (s *SessionService) Current() (*domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.loading
}

// Subscribe registers an observer called after each state change.
func (s *SessionService) Subscribe(fn func(*domain.Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Restore rehydrates the session from the cache. Absent or malformed data
// leaves the session empty; neither case is an error. The loading flag is
// cleared on every path.
func (s *SessionService) Restore(ctx context.Context) (*domain.Identity, error) {
	identity, err := s.repo.Load(ctx)
	if err != nil || !identity.Valid() {
		if err != nil && err != domain.ErrSessionNotFound {
			s.logger.Warn().Err(err).Msg("session restore failed, starting unauthenticated")
		}
		metrics.SessionRestoresTotal.WithLabelValues("miss").Inc()
		s.commit(nil)
		return nil, nil
	}

	metrics.SessionRestoresTotal.WithLabelValues("hit").Inc()
	s.commit(identity)
	s.enqueueAudit(identity.Email, identity.Role, domain.AuditRestore)
	s.logger.Info().Str("email", identity.Email).Str("role", identity.Role).Msg("session restored")
	return identity, nil
}

// Login validates the input, applies the role policy, waits out the
// simulated latency, and commits the new identity unless a concurrent
// logout or newer login superseded it in the meantime.
func (s *SessionService) Login(ctx context.Context, email, password, role string) (*ports.LoginResult, error) {
	if !rules.Email(email).Ok() || password == "" {
		metrics.LoginFailuresTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	resolved, err := domain.ResolveRole(role, email)
	if err != nil {
		metrics.LoginFailuresTotal.WithLabelValues("invalid_role").Inc()
		return nil, err
	}

	gen := s.begin()

	if err := s.sleep(ctx); err != nil {
		s.abort(gen)
		return nil, err
	}

	identity := s.source.DefaultProfile()
	identity.Email = email
	identity.Role = resolved

	// Sign the token before committing anything: a signing failure must
	// leave no session behind, server-side or cached.
	token, err := s.generateToken(&identity)
	if err != nil {
		s.abort(gen)
		metrics.LoginFailuresTotal.WithLabelValues("token_sign").Inc()
		return nil, err
	}

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		metrics.LoginFailuresTotal.WithLabelValues("superseded").Inc()
		s.logger.Debug().Str("email", email).Msg("pending login superseded")
		return nil, domain.ErrLoginSuperseded
	}
	if err := s.repo.Save(ctx, &identity); err != nil {
		s.loading = false
		s.mu.Unlock()
		metrics.LoginFailuresTotal.WithLabelValues("cache_write").Inc()
		return nil, err
	}
	s.current = &identity
	s.loading = false
	subs := append([]func(*domain.Identity){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(&identity)
	}

	metrics.LoginsTotal.WithLabelValues(resolved).Inc()
	s.enqueueAudit(email, resolved, domain.AuditLogin)
	s.logger.Info().Str("email", email).Str("role", resolved).Msg("login succeeded")

	return &ports.LoginResult{Token: token, Identity: &identity}, nil
}

// Logout clears the identity and removes the cache entry. Calling it twice
// leaves the session in the same empty state both times.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.generation++ // invalidate any login still waiting out its delay
	prev := s.current
	s.current = nil
	s.loading = false
	subs := append([]func(*domain.Identity){}, s.subscribers...)
	s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil && err != domain.ErrSessionNotFound {
		s.logger.Warn().Err(err).Msg("failed to clear cached session")
	}

	for _, fn := range subs {
		fn(nil)
	}

	if prev != nil {
		s.enqueueAudit(prev.Email, prev.Role, domain.AuditLogout)
		s.logger.Info().Str("email", prev.Email).Msg("logged out")
	}
	return nil
}

// begin marks a login in flight and returns its generation.
func (s *SessionService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loading = true
	return s.generation
}

// abort clears the loading flag for a cancelled login, unless a newer
// operation already owns it.
func (s *SessionService) abort(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.loading = false
	}
}

// sleep simulates backend latency, honoring context cancellation.
func (s *SessionService) sleep(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.loginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// commit replaces the current identity, clears loading, and notifies.
func (s *SessionService) commit(identity *domain.Identity) {
	s.mu.Lock()
	s.generation++
	s.current = identity
	s.loading = false
	subs := append([]func(*domain.Identity){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}

func (s *SessionService) enqueueAudit(email, role, action string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.SessionEvent{
		Email:     email,
		Role:      role,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

func (s *SessionService) generateToken(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"email":      identity.Email,
		"role":       identity.Role,
		"name":       identity.Name,
		"company_id": identity.CompanyID,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
