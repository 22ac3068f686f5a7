package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/internal/service/dispatcher"
	"github.com/you-humble/partexplorer/internal/service/filter"
	"github.com/you-humble/partexplorer/internal/service/pagination"
	"github.com/you-humble/partexplorer/platform/logger"
)

const (
	msgNetworkFailure    = "Não foi possível consultar o catálogo. Tente novamente."
	msgMalformedResponse = "O catálogo retornou uma resposta inválida."
	msgUnexpected        = "Erro inesperado ao buscar produtos."
)

type Lifecycle interface {
	Begin(ctx context.Context) (model.RequestToken, context.Context)
	Run(ctx context.Context, token model.RequestToken, sc model.SearchContext) (model.FetchResult, error)
	IsCurrent(token model.RequestToken) bool
	Invalidate()
}

type CompanyMatcher interface {
	IsCompany(ctx context.Context, name string) bool
}

type SearchPublisher interface {
	SendSearchPerformed(ctx context.Context, event model.SearchPerformed) error
}

type controller struct {
	sessionID uuid.UUID
	lifecycle Lifecycle
	companies CompanyMatcher
	publisher SearchPublisher

	mu       sync.Mutex
	state    model.ViewState
	sc       model.SearchContext
	filters  model.ActiveFilterState
	pager    *pagination.Controller
	entry    model.CacheEntry
	result   model.FilterResult
	selected *model.Product
	errMsg   string
}

// NewController returns the view state machine of one browsing session.
// companies and publisher may be nil.
func NewController(
	sessionID uuid.UUID,
	lifecycle Lifecycle,
	companies CompanyMatcher,
	publisher SearchPublisher,
) *controller {
	c := &controller{
		sessionID: sessionID,
		lifecycle: lifecycle,
		companies: companies,
		publisher: publisher,
		state:     model.ViewIdle,
		filters:   model.ActiveFilterState{}.Cleared(),
		pager:     pagination.New(),
	}
	c.clearResults()
	return c
}

// Search starts a new top-level search. Facet selections are dropped, toggles
// are kept, and the page goes back to 1.
func (c *controller) Search(ctx context.Context, in model.SearchInput) (model.View, error) {
	const op = "view.controller.Search"

	query := strings.TrimSpace(in.Query)
	loc := model.LocationFilter{
		State: strings.TrimSpace(in.Location.State),
		City:  strings.TrimSpace(in.Location.City),
		CEP:   strings.TrimSpace(in.Location.CEP),
	}
	if query == "" && loc.IsEmpty() {
		return c.View(), fmt.Errorf("%s: %w: empty query", op, model.ErrValidation)
	}

	mode := c.resolveMode(ctx, query, in.Mode)
	if mode == model.ModePlate && dispatcher.NormalizePlate(query) == "" {
		return c.View(), fmt.Errorf("%s: %w: plate is empty", op, model.ErrValidation)
	}

	c.mu.Lock()
	if err := c.transition(model.ViewLoading); err != nil {
		c.mu.Unlock()
		return c.View(), fmt.Errorf("%s: %w", op, err)
	}
	c.sc = model.SearchContext{
		QueryText: query,
		Mode:      mode,
		Page:      1,
		Location:  loc,
		Toggles:   c.sc.Toggles,
	}
	c.filters = c.filters.Cleared()
	c.pager.Reset()
	c.selected = nil
	d := c.begin(ctx)
	c.mu.Unlock()

	return c.dispatch(ctx, d)
}

// SetPage moves to page n of the current search, keeping filters and toggles.
func (c *controller) SetPage(ctx context.Context, n int) (model.View, error) {
	const op = "view.controller.SetPage"

	c.mu.Lock()
	if c.state == model.ViewIdle {
		c.mu.Unlock()
		return c.View(), fmt.Errorf("%s: %w: no active search", op, model.ErrInvalidTransition)
	}
	if err := c.pager.Goto(n); err != nil {
		c.mu.Unlock()
		return c.View(), fmt.Errorf("%s: %w", op, err)
	}
	if err := c.transition(model.ViewLoading); err != nil {
		c.mu.Unlock()
		return c.View(), fmt.Errorf("%s: %w", op, err)
	}
	c.sc.Page = n
	c.selected = nil
	d := c.begin(ctx)
	c.mu.Unlock()

	return c.dispatch(ctx, d)
}

// SetToggles replaces the toggles. Toggles are part of the cache key, so an
// active search is re-dispatched from page 1. In Idle they are only stored.
func (c *controller) SetToggles(ctx context.Context, t model.Toggles) (model.View, error) {
	const op = "view.controller.SetToggles"

	c.mu.Lock()
	c.sc.Toggles = t
	c.filters = c.filters.WithToggles(t)
	if c.state == model.ViewIdle {
		v := c.snapshot()
		c.mu.Unlock()
		return v, nil
	}
	if err := c.transition(model.ViewLoading); err != nil {
		c.mu.Unlock()
		return c.View(), fmt.Errorf("%s: %w", op, err)
	}
	c.pager.Reset()
	c.sc.Page = 1
	c.selected = nil
	d := c.begin(ctx)
	c.mu.Unlock()

	return c.dispatch(ctx, d)
}

// ToggleFacet flips one facet value and refilters the held page. No network.
func (c *controller) ToggleFacet(d model.FacetDimension, value string) (model.View, error) {
	const op = "view.controller.ToggleFacet"

	if strings.TrimSpace(value) == "" {
		return c.View(), fmt.Errorf("%s: %w: empty facet value", op, model.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == model.ViewIdle {
		return c.snapshot(), fmt.Errorf("%s: %w: no results to filter", op, model.ErrInvalidTransition)
	}

	c.filters = c.filters.WithToggled(d, value)
	c.refilter()
	return c.snapshot(), nil
}

func (c *controller) ClearFacets() (model.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = c.filters.Cleared()
	if c.state != model.ViewIdle {
		c.refilter()
	}
	return c.snapshot(), nil
}

func (c *controller) OpenDetail(id string) (model.View, error) {
	const op = "view.controller.OpenDetail"

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.CanTransition(model.ViewDetail) {
		return c.snapshot(), fmt.Errorf("%s: %w: %s -> %s", op, model.ErrInvalidTransition, c.state, model.ViewDetail)
	}

	for _, p := range c.result.Products {
		if p.ID == id {
			c.selected = &p
			c.state = model.ViewDetail
			return c.snapshot(), nil
		}
	}

	return c.snapshot(), fmt.Errorf("%s: %w: %s", op, model.ErrProductNotFound, id)
}

func (c *controller) CloseDetail() (model.View, error) {
	const op = "view.controller.CloseDetail"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != model.ViewDetail {
		return c.snapshot(), fmt.Errorf("%s: %w: %s -> %s", op, model.ErrInvalidTransition, c.state, model.ViewResults)
	}

	c.selected = nil
	c.state = model.ViewResults
	return c.snapshot(), nil
}

// Reset abandons any in-flight search and returns to Idle. Toggles survive.
func (c *controller) Reset() model.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lifecycle.Invalidate()
	c.state = model.ViewIdle
	c.sc = model.SearchContext{Toggles: c.sc.Toggles}
	c.filters = c.filters.Cleared()
	c.pager.Reset()
	c.clearResults()
	return c.snapshot()
}

func (c *controller) View() model.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

type pendingDispatch struct {
	token model.RequestToken
	ctx   context.Context
	sc    model.SearchContext
}

// begin issues the lifecycle token of a new dispatch. Must hold c.mu, so
// tokens follow the order in which operations changed the view.
func (c *controller) begin(ctx context.Context) pendingDispatch {
	c.errMsg = ""
	token, reqCtx := c.lifecycle.Begin(ctx)
	return pendingDispatch{token: token, ctx: reqCtx, sc: c.sc}
}

// dispatch runs the fetch without holding c.mu and commits the outcome only if
// its token is still current.
func (c *controller) dispatch(ctx context.Context, d pendingDispatch) (model.View, error) {
	res, err := c.lifecycle.Run(d.ctx, d.token, d.sc)
	if errors.Is(err, model.ErrStaleRequest) {
		return c.View(), nil
	}

	c.mu.Lock()
	if !c.lifecycle.IsCurrent(d.token) {
		v := c.snapshot()
		c.mu.Unlock()
		return v, nil
	}

	c.state = model.ViewResults
	if err != nil {
		logger.Warn(ctx, "search failed", logger.String("query", d.sc.QueryText), logger.ErrorF(err))
		c.entry = model.EmptyCacheEntry()
		c.errMsg = userMessage(err)
		c.pager.SetTotal(0)
	} else {
		c.entry = res.Entry
		c.pager.SetTotal(res.Entry.Total)
	}
	c.refilter()
	v := c.snapshot()
	c.mu.Unlock()

	if !res.FromCache {
		c.publish(ctx, d.sc, res.Entry.Total, err != nil)
	}
	return v, nil
}

func (c *controller) publish(ctx context.Context, sc model.SearchContext, total int64, failed bool) {
	if c.publisher == nil {
		return
	}

	event := model.SearchPerformed{
		EventID:    uuid.New(),
		SessionID:  c.sessionID,
		Query:      sc.QueryText,
		Mode:       sc.Mode,
		Page:       sc.Page,
		Total:      total,
		Failed:     failed,
		OccurredAt: time.Now().UTC(),
	}
	if err := c.publisher.SendSearchPerformed(ctx, event); err != nil {
		logger.Warn(ctx, "publish search event", logger.ErrorF(err))
	}
}

// resolveMode picks the search mode. An explicit mode wins, then
// location-only searches, plate shaped queries and known companies.
func (c *controller) resolveMode(ctx context.Context, query string, explicit model.Mode) model.Mode {
	switch {
	case explicit != "":
		return explicit
	case query == "":
		return model.ModeFind
	case dispatcher.IsPlate(query):
		return model.ModePlate
	case c.companies != nil && c.companies.IsCompany(ctx, query):
		return model.ModeCompany
	default:
		return model.ModeCatalog
	}
}

// transition moves to next if the transition table allows it. Must hold c.mu.
func (c *controller) transition(next model.ViewState) error {
	if !c.state.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, c.state, next)
	}
	c.state = next
	return nil
}

// refilter re-derives the visible page from the held entry. Must hold c.mu.
func (c *controller) refilter() {
	c.result = filter.Apply(c.entry.OriginalData, c.filters, c.sc.QueryText)
	if c.selected == nil {
		return
	}

	for _, p := range c.result.Products {
		if p.ID == c.selected.ID {
			return
		}
	}
	c.selected = nil
	if c.state == model.ViewDetail {
		c.state = model.ViewResults
	}
}

func (c *controller) clearResults() {
	c.entry = model.EmptyCacheEntry()
	c.result = model.FilterResult{
		Items:    []model.RawResultItem{},
		Products: []model.Product{},
		Facets:   model.NewFacetSet(),
	}
	c.selected = nil
	c.errMsg = ""
}

// snapshot copies the visible state. Must hold c.mu.
func (c *controller) snapshot() model.View {
	v := model.View{
		State:         c.state,
		Query:         c.sc.QueryText,
		Mode:          c.sc.Mode,
		Location:      c.sc.Location,
		Page:          c.pager.Current(),
		PageSize:      model.PageSize,
		TotalPages:    c.pager.TotalPages(),
		TotalResults:  c.pager.Total(),
		FilteredCount: len(c.result.Products),
		Products:      append([]model.Product{}, c.result.Products...),
		Facets:        c.result.Facets.Clone(),
		Filters:       c.filters.Clone(),
		Error:         c.errMsg,
	}
	if c.selected != nil {
		p := *c.selected
		v.Selected = &p
	}
	if c.entry.Vehicle != nil {
		veh := *c.entry.Vehicle
		v.Vehicle = &veh
	}
	return v
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrNetworkFailure):
		return msgNetworkFailure
	case errors.Is(err, model.ErrMalformedResponse):
		return msgMalformedResponse
	default:
		return msgUnexpected
	}
}
