package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/partexplorer/internal/metrics"
	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/platform/logger"
)

// View is the per-session state machine driven by the HTTP layer.
type View interface {
	Search(ctx context.Context, in model.SearchInput) (model.View, error)
	SetPage(ctx context.Context, n int) (model.View, error)
	SetToggles(ctx context.Context, t model.Toggles) (model.View, error)
	ToggleFacet(d model.FacetDimension, value string) (model.View, error)
	ClearFacets() (model.View, error)
	OpenDetail(id string) (model.View, error)
	CloseDetail() (model.View, error)
	Reset() model.View
	View() model.View
}

type Purger interface {
	Purge(ctx context.Context) error
}

// Factory builds the view and its session-scoped cache for a new session.
type Factory func(id uuid.UUID) (View, Purger)

type session struct {
	view     View
	cache    Purger
	lastSeen time.Time
}

type registry struct {
	factory Factory
	idleTTL time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// NewRegistry holds browsing sessions in memory. Sessions untouched for
// idleTTL are dropped by EvictIdle; zero keeps them until deleted.
func NewRegistry(factory Factory, idleTTL time.Duration) *registry {
	return &registry{
		factory:  factory,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

func (r *registry) Create(ctx context.Context) (uuid.UUID, model.View) {
	id := uuid.New()
	view, cache := r.factory(id)

	r.mu.Lock()
	r.sessions[id] = &session{view: view, cache: cache, lastSeen: r.now()}
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	logger.Debug(ctx, "session created", logger.String("session_id", id.String()))

	return id, view.View()
}

// Get returns the session view and marks the session as active.
func (r *registry) Get(_ context.Context, id uuid.UUID) (View, error) {
	const op = "session.registry.Get"

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", op, model.ErrSessionNotFound, id)
	}
	s.lastSeen = r.now()

	return s.view, nil
}

func (r *registry) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "session.registry.Delete"

	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w: %s", op, model.ErrSessionNotFound, id)
	}

	metrics.ActiveSessions.Set(float64(n))
	r.release(ctx, id, s)
	return nil
}

func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// EvictIdle drops sessions idle for longer than the configured TTL and returns
// how many were dropped.
func (r *registry) EvictIdle(ctx context.Context) int {
	if r.idleTTL <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.idleTTL)
	evicted := make(map[uuid.UUID]*session)

	r.mu.Lock()
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			evicted[id] = s
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	if len(evicted) == 0 {
		return 0
	}

	metrics.ActiveSessions.Set(float64(n))
	for id, s := range evicted {
		r.release(ctx, id, s)
	}
	logger.Info(ctx, "idle sessions evicted", logger.Int("evicted", len(evicted)), logger.Int("active", n))

	return len(evicted)
}

// RunJanitor calls EvictIdle every interval until ctx is done.
func (r *registry) RunJanitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 || r.idleTTL <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.EvictIdle(ctx)
		}
	}
}

// Close drops every session.
func (r *registry) Close(ctx context.Context) error {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[uuid.UUID]*session)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(0)
	for id, s := range all {
		r.release(ctx, id, s)
	}
	return nil
}

func (r *registry) release(ctx context.Context, id uuid.UUID, s *session) {
	s.view.Reset()
	if s.cache == nil {
		return
	}
	if err := s.cache.Purge(ctx); err != nil {
		logger.Warn(ctx, "purge session cache",
			logger.String("session_id", id.String()),
			logger.ErrorF(err),
		)
	}
}
