package trending

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/you-humble/partexplorer/internal/model"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	dedupWindow = 4096
)

type term struct {
	display string
	count   int64
}

type service struct {
	mu    sync.Mutex
	terms map[string]*term

	seen  map[uuid.UUID]struct{}
	order []uuid.UUID
	next  int
}

// NewTrendingService aggregates first-page search terms. Redelivered events
// are ignored by event id within a bounded window.
func NewTrendingService() *service {
	return &service{
		terms: make(map[string]*term),
		seen:  make(map[uuid.UUID]struct{}, dedupWindow),
		order: make([]uuid.UUID, 0, dedupWindow),
	}
}

func (s *service) Record(_ context.Context, event model.SearchPerformed) error {
	key := normalize(event.Query)
	if key == "" || event.Failed || event.Page > 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if event.EventID != uuid.Nil {
		if _, dup := s.seen[event.EventID]; dup {
			return nil
		}
		s.remember(event.EventID)
	}

	t, ok := s.terms[key]
	if !ok {
		t = &term{display: strings.Join(strings.Fields(event.Query), " ")}
		s.terms[key] = t
	}
	t.count++

	return nil
}

// Top returns up to limit terms by count, ties broken alphabetically.
func (s *service) Top(_ context.Context, limit int) []model.TrendingTerm {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	s.mu.Lock()
	out := make([]model.TrendingTerm, 0, len(s.terms))
	for _, t := range s.terms {
		out = append(out, model.TrendingTerm{Query: t.display, Count: t.count})
	}
	s.mu.Unlock()

	slices.SortFunc(out, func(a, b model.TrendingTerm) int {
		if a.Count != b.Count {
			if a.Count > b.Count {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Query, b.Query)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *service) remember(id uuid.UUID) {
	if len(s.order) < dedupWindow {
		s.order = append(s.order, id)
		s.seen[id] = struct{}{}
		return
	}

	delete(s.seen, s.order[s.next])
	s.order[s.next] = id
	s.seen[id] = struct{}{}
	s.next = (s.next + 1) % dedupWindow
}

func normalize(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
