package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/you-humble/partexplorer/internal/metrics"
	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/internal/service/facet"
	"github.com/you-humble/partexplorer/internal/service/transformer"
	"github.com/you-humble/partexplorer/platform/logger"
)

type Dispatcher interface {
	Dispatch(sc model.SearchContext) model.CatalogRequest
}

type CatalogClient interface {
	Fetch(ctx context.Context, req model.CatalogRequest) (model.CatalogPage, error)
}

type ResponseCache interface {
	Get(ctx context.Context, key string) (model.CacheEntry, error)
	Put(ctx context.Context, key string, entry model.CacheEntry) error
}

type manager struct {
	dispatcher Dispatcher
	client     CatalogClient
	cache      ResponseCache
	timeout    time.Duration

	mu      sync.Mutex
	seq     uint64
	current model.RequestToken
	cancel  context.CancelFunc
}

// NewManager returns a per-session lifecycle manager. timeout bounds a single
// upstream call; zero disables it.
func NewManager(
	dispatcher Dispatcher,
	client CatalogClient,
	cache ResponseCache,
	timeout time.Duration,
) *manager {
	return &manager{
		dispatcher: dispatcher,
		client:     client,
		cache:      cache,
		timeout:    timeout,
	}
}

// Fetch begins a dispatch and runs it. A superseded call returns
// model.ErrStaleRequest and leaves the cache untouched. Upstream failures
// return an empty entry with the wrapped error.
func (m *manager) Fetch(ctx context.Context, sc model.SearchContext) (model.FetchResult, error) {
	token, reqCtx := m.Begin(ctx)
	return m.Run(reqCtx, token, sc)
}

// Begin issues a fresh token and cancels the call it supersedes. The returned
// context is cancelled once the token is superseded or its Run returns.
// Callers that order their own state by token call Begin under their lock.
func (m *manager) Begin(ctx context.Context) (model.RequestToken, context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
	}

	m.seq++
	reqCtx, cancel := context.WithCancel(ctx)
	m.current = model.NewRequestToken(m.seq)
	m.cancel = cancel

	return m.current, reqCtx
}

// Run dispatches sc under a token from Begin. ctx must be the context Begin
// returned with it.
func (m *manager) Run(ctx context.Context, token model.RequestToken, sc model.SearchContext) (model.FetchResult, error) {
	const op = "lifecycle.manager.Run"

	defer m.release(token)

	req := m.dispatcher.Dispatch(sc)
	key := req.CacheKey()
	mode := string(sc.Mode)

	log := logger.With(
		logger.Uint64("token_seq", token.Seq),
		logger.String("endpoint", string(req.Endpoint)),
		logger.String("cache_key", key),
	)

	res := model.FetchResult{Token: token, Request: req}
	if !m.IsCurrent(token) {
		return m.stale(op, res, mode)
	}

	entry, err := m.cache.Get(ctx, key)
	switch {
	case err == nil:
		if !m.IsCurrent(token) {
			return m.stale(op, res, mode)
		}
		metrics.SearchesTotal.WithLabelValues(mode, metrics.OutcomeCached).Inc()
		log.Debug(ctx, "served from cache")
		res.Entry = entry
		res.FromCache = true
		return res, nil
	case !errors.Is(err, model.ErrCacheMiss):
		log.Warn(ctx, "cache lookup failed", logger.ErrorF(err))
	}

	callCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	page, err := m.client.Fetch(callCtx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) || !m.IsCurrent(token) {
			return m.stale(op, res, mode)
		}
		metrics.SearchesTotal.WithLabelValues(mode, metrics.OutcomeFailed).Inc()
		log.Error(ctx, "catalog fetch failed", logger.ErrorF(err))
		res.Entry = model.EmptyCacheEntry()
		return res, fmt.Errorf("%s: %w", op, err)
	}

	entry = buildEntry(page, sc.QueryText)
	if !m.commit(ctx, token, key, entry) {
		return m.stale(op, res, mode)
	}

	metrics.SearchesTotal.WithLabelValues(mode, metrics.OutcomeOK).Inc()
	log.Info(ctx, "catalog page fetched",
		logger.Int("items", len(entry.OriginalData)),
		logger.Int64("total", entry.Total),
	)
	res.Entry = entry
	return res, nil
}

// IsCurrent reports whether token belongs to the latest dispatch.
func (m *manager) IsCurrent(token model.RequestToken) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return !token.IsZero() && token.Same(m.current)
}

// Invalidate cancels the in-flight call, if any, and makes every issued token
// stale.
func (m *manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.current = model.RequestToken{}
}

// release cancels the context of a finished run. Superseded tokens were
// already cancelled by Begin.
func (m *manager) release(token model.RequestToken) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token.Same(m.current) && m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// commit writes the entry only if token is still current. The write happens
// outside m.mu: the key addresses this request alone, so an entry that lands
// after a reissue is still correct for it.
func (m *manager) commit(ctx context.Context, token model.RequestToken, key string, entry model.CacheEntry) bool {
	if !m.IsCurrent(token) {
		return false
	}

	if err := m.cache.Put(context.WithoutCancel(ctx), key, entry); err != nil {
		logger.Warn(ctx, "cache write failed", logger.String("cache_key", key), logger.ErrorF(err))
	}
	return true
}

func (m *manager) stale(op string, res model.FetchResult, mode string) (model.FetchResult, error) {
	metrics.StaleResponsesTotal.Inc()
	metrics.SearchesTotal.WithLabelValues(mode, metrics.OutcomeStale).Inc()

	res.Entry = model.EmptyCacheEntry()
	return res, fmt.Errorf("%s: %w", op, model.ErrStaleRequest)
}

func buildEntry(page model.CatalogPage, query string) model.CacheEntry {
	items := page.Items
	if items == nil {
		items = []model.RawResultItem{}
	}

	return model.CacheEntry{
		Products:     transformer.TransformAll(items, query),
		Total:        page.Total,
		OriginalData: items,
		Facets:       facet.Extract(items),
		Vehicle:      page.Vehicle,
	}
}
