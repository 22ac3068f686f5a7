package reference

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/platform/logger"
)

const defaultBaseDelay = 200 * time.Millisecond

type CatalogClient interface {
	Companies(ctx context.Context) ([]model.ReferenceCompany, error)
	Brands(ctx context.Context) ([]model.ReferenceBrand, error)
	Cities(ctx context.Context) ([]string, error)
}

type service struct {
	client    CatalogClient
	attempts  uint64
	baseDelay time.Duration

	group singleflight.Group

	mu     sync.RWMutex
	data   model.ReferenceData
	loaded bool
}

// NewReferenceService keeps the catalog reference lists in memory. Each list
// is fetched with up to attempts retries and exponential backoff from
// baseDelay.
func NewReferenceService(client CatalogClient, attempts uint64, baseDelay time.Duration) *service {
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}
	return &service{
		client:    client,
		attempts:  attempts,
		baseDelay: baseDelay,
	}
}

// Load fetches all lists concurrently and replaces the held data. Nothing is
// replaced when any list fails.
func (s *service) Load(ctx context.Context) error {
	const op = "reference.service.Load"

	_, err, _ := s.group.Do("load", func() (any, error) {
		var data model.ReferenceData

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			data.Companies, err = withRetry(gctx, s, "companies", s.client.Companies)
			return err
		})
		g.Go(func() error {
			var err error
			data.Brands, err = withRetry(gctx, s, "brands", s.client.Brands)
			return err
		})
		g.Go(func() error {
			var err error
			data.Cities, err = withRetry(gctx, s, "cities", s.client.Cities)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.data = data
		s.loaded = true
		s.mu.Unlock()

		logger.Info(ctx, "reference data loaded",
			logger.Int("companies", len(data.Companies)),
			logger.Int("brands", len(data.Brands)),
			logger.Int("cities", len(data.Cities)),
		)
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) Companies(ctx context.Context) ([]model.ReferenceCompany, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return data.Companies, nil
}

func (s *service) Brands(ctx context.Context) ([]model.ReferenceBrand, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return data.Brands, nil
}

func (s *service) Cities(ctx context.Context) ([]string, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return data.Cities, nil
}

// States lists the distinct company states, sorted.
func (s *service) States(ctx context.Context) ([]string, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	states := lo.Uniq(lo.FilterMap(data.Companies, func(c model.ReferenceCompany, _ int) (string, bool) {
		st := strings.ToUpper(strings.TrimSpace(c.State))
		return st, st != ""
	}))
	slices.Sort(states)
	return states, nil
}

// IsCompany reports whether name matches a known company or company group,
// ignoring case. Reference data failures count as no match.
func (s *service) IsCompany(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	data, err := s.snapshot(ctx)
	if err != nil {
		logger.Warn(ctx, "company lookup without reference data", logger.ErrorF(err))
		return false
	}

	return lo.ContainsBy(data.Companies, func(c model.ReferenceCompany) bool {
		return strings.EqualFold(c.Name, name) || (c.GroupName != "" && strings.EqualFold(c.GroupName, name))
	})
}

func (s *service) snapshot(ctx context.Context) (model.ReferenceData, error) {
	const op = "reference.service.snapshot"

	s.mu.RLock()
	data, loaded := s.data, s.loaded
	s.mu.RUnlock()
	if loaded {
		return data, nil
	}

	if err := s.Load(ctx); err != nil {
		return model.ReferenceData{}, fmt.Errorf("%s: %w: %w", op, model.ErrServiceUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, nil
}

func withRetry[T any](ctx context.Context, s *service, name string, fetch func(context.Context) (T, error)) (T, error) {
	var out T

	b := retry.WithMaxRetries(s.attempts, retry.NewExponential(s.baseDelay))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		v, err := fetch(ctx)
		if err != nil {
			if errors.Is(err, model.ErrMalformedResponse) {
				return err
			}
			logger.Debug(ctx, "reference fetch failed, retrying", logger.String("list", name), logger.ErrorF(err))
			return retry.RetryableError(err)
		}
		out = v
		return nil
	})

	return out, err
}
