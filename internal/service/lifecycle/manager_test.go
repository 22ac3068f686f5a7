package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/internal/repository/cache"
	"github.com/you-humble/partexplorer/internal/service/dispatcher"
	"github.com/you-humble/partexplorer/internal/service/mocks"
)

func catalogSearch(q string, page int, toggles model.Toggles) model.SearchContext {
	return model.SearchContext{
		QueryText: q,
		Mode:      model.ModeCatalog,
		Page:      page,
		Toggles:   toggles,
	}
}

func withQuery(q string) any {
	return mock.MatchedBy(func(r model.CatalogRequest) bool { return r.Params.Get("q") == q })
}

func fakePage(n int) model.CatalogPage {
	items := make([]model.RawResultItem, n)
	for i := range items {
		items[i] = model.RawResultItem{
			ID: gofakeit.UUID(),
			Names: []model.PartName{
				{Name: gofakeit.ProductName(), Type: model.NameTypeDesc},
				{Name: gofakeit.LetterN(6), Type: model.NameTypeSKU, Brand: &model.Brand{Name: gofakeit.Company()}},
			},
		}
	}
	return model.CatalogPage{Items: items, Total: int64(n * 3)}
}

type deps struct {
	client *mocks.MockCatalogClient
	cache  *cacheSpy
}

func newManager(t *testing.T) (*manager, deps) {
	t.Helper()

	d := deps{
		client: mocks.NewMockCatalogClient(t),
		cache:  &cacheSpy{ResponseCache: cache.NewMemoryCache(cache.KeepForSession())},
	}
	return NewManager(dispatcher.NewDispatcher(), d.client, d.cache, 0), d
}

type cacheSpy struct {
	ResponseCache
	puts int
}

func (c *cacheSpy) Put(ctx context.Context, key string, entry model.CacheEntry) error {
	c.puts++
	return c.ResponseCache.Put(ctx, key, entry)
}

func TestManagerFetch(t *testing.T) {
	t.Parallel()

	page := fakePage(4)
	sc := catalogSearch("freio", 1, model.Toggles{})

	tests := []struct {
		name   string
		setup  func(d deps)
		run    func(t *testing.T, m *manager) (model.FetchResult, error)
		assert func(t *testing.T, res model.FetchResult, err error, d deps)
	}{
		{
			name: "miss fetches transforms and caches",
			setup: func(d deps) {
				d.client.On("Fetch", mock.Anything, withQuery("freio")).Return(page, nil).Once()
			},
			run: func(t *testing.T, m *manager) (model.FetchResult, error) {
				return m.Fetch(context.Background(), sc)
			},
			assert: func(t *testing.T, res model.FetchResult, err error, d deps) {
				require.NoError(t, err)
				assert.False(t, res.FromCache)
				assert.Len(t, res.Entry.Products, 4)
				assert.Equal(t, page.Items, res.Entry.OriginalData)
				assert.EqualValues(t, 12, res.Entry.Total)
				assert.NotEmpty(t, res.Entry.Facets.Brands)
				assert.Equal(t, 1, d.cache.puts)
			},
		},
		{
			name: "hit is served without network and is deterministic",
			setup: func(d deps) {
				d.client.On("Fetch", mock.Anything, withQuery("freio")).Return(page, nil).Once()
			},
			run: func(t *testing.T, m *manager) (model.FetchResult, error) {
				first, err := m.Fetch(context.Background(), sc)
				require.NoError(t, err)

				second, err := m.Fetch(context.Background(), sc)
				require.NoError(t, err)
				assert.Equal(t, first.Entry, second.Entry)
				assert.Equal(t, first.Request.CacheKey(), second.Request.CacheKey())
				return second, nil
			},
			assert: func(t *testing.T, res model.FetchResult, err error, d deps) {
				require.NoError(t, err)
				assert.True(t, res.FromCache)
				assert.EqualValues(t, 2, res.Token.Seq)
			},
		},
		{
			name: "toggle flip is a different key and exactly one new fetch",
			setup: func(d deps) {
				d.client.On("Fetch", mock.Anything, mock.MatchedBy(func(r model.CatalogRequest) bool {
					return !r.Toggles.IncludeObsolete
				})).Return(page, nil).Once()
				d.client.On("Fetch", mock.Anything, mock.MatchedBy(func(r model.CatalogRequest) bool {
					return r.Toggles.IncludeObsolete
				})).Return(fakePage(2), nil).Once()
			},
			run: func(t *testing.T, m *manager) (model.FetchResult, error) {
				base, err := m.Fetch(context.Background(), sc)
				require.NoError(t, err)

				flipped := sc
				flipped.Toggles.IncludeObsolete = true
				res, err := m.Fetch(context.Background(), flipped)
				require.NoError(t, err)
				assert.NotEqual(t, base.Request.CacheKey(), res.Request.CacheKey())
				assert.False(t, res.FromCache)

				back, err := m.Fetch(context.Background(), sc)
				require.NoError(t, err)
				assert.True(t, back.FromCache)
				return res, nil
			},
			assert: func(t *testing.T, res model.FetchResult, err error, d deps) {
				require.NoError(t, err)
				assert.Len(t, res.Entry.Products, 2)
				d.client.AssertNumberOfCalls(t, "Fetch", 2)
			},
		},
		{
			name: "network failure yields empty entry and is not cached",
			setup: func(d deps) {
				d.client.On("Fetch", mock.Anything, mock.Anything).
					Return(model.CatalogPage{}, model.ErrNetworkFailure).
					Twice()
			},
			run: func(t *testing.T, m *manager) (model.FetchResult, error) {
				_, _ = m.Fetch(context.Background(), sc)
				return m.Fetch(context.Background(), sc)
			},
			assert: func(t *testing.T, res model.FetchResult, err error, d deps) {
				require.ErrorIs(t, err, model.ErrNetworkFailure)
				assert.Equal(t, model.EmptyCacheEntry(), res.Entry)
				assert.Zero(t, d.cache.puts)
			},
		},
		{
			name: "malformed response yields empty entry",
			setup: func(d deps) {
				d.client.On("Fetch", mock.Anything, mock.Anything).
					Return(model.CatalogPage{}, model.ErrMalformedResponse).
					Once()
			},
			run: func(t *testing.T, m *manager) (model.FetchResult, error) {
				return m.Fetch(context.Background(), sc)
			},
			assert: func(t *testing.T, res model.FetchResult, err error, d deps) {
				require.ErrorIs(t, err, model.ErrMalformedResponse)
				assert.Empty(t, res.Entry.Products)
				assert.Zero(t, res.Entry.Total)
			},
		},
		{
			name: "empty result is cached like any other",
			setup: func(d deps) {
				d.client.On("Fetch", mock.Anything, mock.Anything).Return(model.CatalogPage{}, nil).Once()
			},
			run: func(t *testing.T, m *manager) (model.FetchResult, error) {
				_, err := m.Fetch(context.Background(), sc)
				require.NoError(t, err)
				return m.Fetch(context.Background(), sc)
			},
			assert: func(t *testing.T, res model.FetchResult, err error, d deps) {
				require.NoError(t, err)
				assert.True(t, res.FromCache)
				assert.NotNil(t, res.Entry.Products)
				assert.Empty(t, res.Entry.Products)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, d := newManager(t)
			tt.setup(d)

			res, err := tt.run(t, m)
			tt.assert(t, res, err, d)
		})
	}
}

func TestManagerRaceConvergence(t *testing.T) {
	t.Parallel()

	m, d := newManager(t)
	started := make(chan struct{})

	d.client.On("Fetch", mock.Anything, withQuery("freio")).
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(model.CatalogPage{}, context.Canceled).
		Once()
	d.client.On("Fetch", mock.Anything, withQuery("filtro")).Return(fakePage(3), nil).Once()

	type outcome struct {
		res model.FetchResult
		err error
	}
	firstDone := make(chan outcome, 1)
	go func() {
		res, err := m.Fetch(context.Background(), catalogSearch("freio", 1, model.Toggles{}))
		firstDone <- outcome{res, err}
	}()

	<-started
	second, err := m.Fetch(context.Background(), catalogSearch("filtro", 1, model.Toggles{}))
	require.NoError(t, err)

	var first outcome
	select {
	case first = <-firstDone:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded fetch was not cancelled")
	}

	require.ErrorIs(t, first.err, model.ErrStaleRequest)
	assert.False(t, m.IsCurrent(first.res.Token))
	assert.True(t, m.IsCurrent(second.Token))
	assert.Greater(t, second.Token.Seq, first.res.Token.Seq)
	assert.Equal(t, 1, d.cache.puts)
}

func TestManagerDropsLateResponse(t *testing.T) {
	t.Parallel()

	m, d := newManager(t)
	started := make(chan struct{})
	release := make(chan struct{})

	// The first call ignores cancellation and answers after it was superseded.
	d.client.On("Fetch", mock.Anything, withQuery("freio")).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(fakePage(5), nil).
		Once()
	d.client.On("Fetch", mock.Anything, withQuery("filtro")).Return(fakePage(1), nil).Once()

	errCh := make(chan error, 1)
	go func() {
		_, err := m.Fetch(context.Background(), catalogSearch("freio", 1, model.Toggles{}))
		errCh <- err
	}()

	<-started
	_, err := m.Fetch(context.Background(), catalogSearch("filtro", 1, model.Toggles{}))
	require.NoError(t, err)
	close(release)

	require.ErrorIs(t, <-errCh, model.ErrStaleRequest)
	assert.Equal(t, 1, d.cache.puts)

	req := dispatcher.NewDispatcher().Dispatch(catalogSearch("freio", 1, model.Toggles{}))
	_, err = d.cache.Get(context.Background(), req.CacheKey())
	assert.True(t, errors.Is(err, model.ErrCacheMiss))
}

func TestManagerInvalidate(t *testing.T) {
	t.Parallel()

	m, d := newManager(t)
	d.client.On("Fetch", mock.Anything, mock.Anything).Return(fakePage(1), nil).Once()

	res, err := m.Fetch(context.Background(), catalogSearch("freio", 1, model.Toggles{}))
	require.NoError(t, err)
	require.True(t, m.IsCurrent(res.Token))

	m.Invalidate()
	assert.False(t, m.IsCurrent(res.Token))
	assert.False(t, m.IsCurrent(model.RequestToken{}))
}

type slowPutCache struct {
	ResponseCache
	entered chan struct{}
	release chan struct{}
}

func (c *slowPutCache) Put(ctx context.Context, key string, entry model.CacheEntry) error {
	close(c.entered)
	<-c.release
	return c.ResponseCache.Put(ctx, key, entry)
}

func TestManagerBeginDoesNotWaitForCacheWrite(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCatalogClient(t)
	slow := &slowPutCache{
		ResponseCache: cache.NewMemoryCache(cache.KeepForSession()),
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
	m := NewManager(dispatcher.NewDispatcher(), client, slow, 0)

	client.On("Fetch", mock.Anything, withQuery("freio")).Return(fakePage(2), nil).Once()

	fetched := make(chan error, 1)
	go func() {
		_, err := m.Fetch(context.Background(), catalogSearch("freio", 1, model.Toggles{}))
		fetched <- err
	}()

	<-slow.entered

	begun := make(chan model.RequestToken, 1)
	go func() {
		token, _ := m.Begin(context.Background())
		begun <- token
	}()

	select {
	case token := <-begun:
		assert.True(t, m.IsCurrent(token))
	case <-time.After(2 * time.Second):
		t.Fatal("Begin blocked behind a cache write")
	}

	close(slow.release)
	require.NoError(t, <-fetched)
}

func TestManagerRunWithSupersededToken(t *testing.T) {
	t.Parallel()

	m, d := newManager(t)

	first, firstCtx := m.Begin(context.Background())
	second, _ := m.Begin(context.Background())

	require.ErrorIs(t, firstCtx.Err(), context.Canceled)

	res, err := m.Run(firstCtx, first, catalogSearch("freio", 1, model.Toggles{}))
	require.ErrorIs(t, err, model.ErrStaleRequest)
	assert.Equal(t, first, res.Token)
	assert.True(t, m.IsCurrent(second))
	assert.Zero(t, d.cache.puts)
	d.client.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}
