package dispatcher

import (
	"net/url"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partexplorer/internal/model"
)

func TestDispatch(t *testing.T) {
	t.Parallel()

	company := gofakeit.Company()

	type testCase struct {
		name   string
		sc     model.SearchContext
		assert func(t *testing.T, req model.CatalogRequest)
	}

	tests := []testCase{
		{
			name: "plate: separators stripped and page forwarded",
			sc:   model.SearchContext{QueryText: "EBH-0173", Mode: model.ModePlate, Page: 3},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, model.EndpointPlate, req.Endpoint)
				assert.Equal(t, "/plate-search/EBH0173", req.Path)
				assert.Equal(t, url.Values{
					"page":     {"3"},
					"pageSize": {"16"},
				}, req.Params)
			},
		},
		{
			name: "plate: toggles are not sent to the plate endpoint",
			sc: model.SearchContext{
				QueryText: "geh 5a72",
				Mode:      model.ModePlate,
				Page:      1,
				Toggles:   model.Toggles{IncludeObsolete: true, InStockOnly: true},
			},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, "/plate-search/GEH5A72", req.Path)
				assert.NotContains(t, req.Params, "include_obsolete")
				assert.NotContains(t, req.Params, "available_only")
				assert.True(t, req.Toggles.IncludeObsolete)
			},
		},
		{
			name: "company: company param with find search mode",
			sc:   model.SearchContext{QueryText: company, Mode: model.ModeCompany, Page: 1},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, "/search", req.Path)
				assert.Equal(t, url.Values{
					"company":    {company},
					"searchMode": {"find"},
					"page_size":  {"16"},
					"page":       {"1"},
				}, req.Params)
			},
		},
		{
			name: "find: empty query with city browses by city only",
			sc: model.SearchContext{
				Mode:     model.ModeFind,
				Page:     2,
				Location: model.LocationFilter{State: "SP", City: "Campinas"},
			},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, url.Values{
					"city":      {"Campinas"},
					"page_size": {"16"},
					"page":      {"2"},
				}, req.Params)
			},
		},
		{
			name: "find: empty query with state only browses by state",
			sc: model.SearchContext{
				Mode:     model.ModeFind,
				Page:     1,
				Location: model.LocationFilter{State: "RS"},
			},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, url.Values{
					"state":     {"RS"},
					"page_size": {"16"},
					"page":      {"1"},
				}, req.Params)
			},
		},
		{
			name: "find: query with location attaches every set location field",
			sc: model.SearchContext{
				QueryText: "filtro de oleo",
				Mode:      model.ModeFind,
				Page:      1,
				Location:  model.LocationFilter{State: "SP", CEP: "01310-100"},
			},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, url.Values{
					"q":         {"filtro de oleo"},
					"state":     {"SP"},
					"cep":       {"01310-100"},
					"page_size": {"16"},
					"page":      {"1"},
				}, req.Params)
			},
		},
		{
			name: "find: cep only with empty query falls back to broad text search",
			sc: model.SearchContext{
				Mode:     model.ModeFind,
				Page:     1,
				Location: model.LocationFilter{CEP: "90000-000"},
			},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, url.Values{
					"page_size": {"16"},
					"page":      {"1"},
				}, req.Params)
			},
		},
		{
			name: "catalog: location ignored outside find mode",
			sc: model.SearchContext{
				QueryText: "freio",
				Mode:      model.ModeCatalog,
				Page:      1,
				Location:  model.LocationFilter{State: "SP"},
			},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, url.Values{
					"q":         {"freio"},
					"page_size": {"16"},
					"page":      {"1"},
				}, req.Params)
			},
		},
		{
			name: "catalog: toggles attached as boolean params",
			sc: model.SearchContext{
				QueryText: "freio",
				Mode:      model.ModeCatalog,
				Page:      4,
				Toggles:   model.Toggles{IncludeObsolete: true, InStockOnly: true},
			},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, "true", req.Params.Get("include_obsolete"))
				assert.Equal(t, "true", req.Params.Get("available_only"))
				assert.Equal(t, "4", req.Params.Get("page"))
			},
		},
		{
			name: "catalog: page below one is clamped",
			sc:   model.SearchContext{QueryText: "vela", Mode: model.ModeCatalog, Page: 0},
			assert: func(t *testing.T, req model.CatalogRequest) {
				assert.Equal(t, "1", req.Params.Get("page"))
			},
		},
	}

	d := NewDispatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := d.Dispatch(tt.sc)
			require.NotNil(t, req.Params)
			tt.assert(t, req)
		})
	}
}

func TestDispatchCacheKey(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	base := model.SearchContext{QueryText: "freio", Mode: model.ModeCatalog, Page: 1}

	first := d.Dispatch(base).CacheKey()
	again := d.Dispatch(base).CacheKey()
	assert.Equal(t, first, again)

	flipped := base
	flipped.Toggles = model.Toggles{IncludeObsolete: true}
	assert.NotEqual(t, first, d.Dispatch(flipped).CacheKey())

	nextPage := base
	nextPage.Page = 2
	assert.NotEqual(t, first, d.Dispatch(nextPage).CacheKey())

	plate := model.SearchContext{QueryText: "EBH0173", Mode: model.ModePlate, Page: 1}
	plateWithToggle := plate
	plateWithToggle.Toggles = model.Toggles{InStockOnly: true}
	assert.NotEqual(t, d.Dispatch(plate).CacheKey(), d.Dispatch(plateWithToggle).CacheKey())
}

func TestRequestBuilderIsImmutable(t *testing.T) {
	t.Parallel()

	base := searchRequest().Set("q", "freio")
	withPage := base.Int("page", 2)

	assert.Equal(t, url.Values{"q": {"freio"}}, base.Build().Params)
	assert.Equal(t, url.Values{"q": {"freio"}, "page": {"2"}}, withPage.Build().Params)
}

func TestIsPlate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{in: "ABC1234", want: true},
		{in: "abc-1234", want: true},
		{in: "GEH 5A72", want: true},
		{in: "GEH-5A72", want: true},
		{in: "INVALID", want: false},
		{in: "pastilha de freio", want: false},
		{in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsPlate(tt.in))
		})
	}
}

func TestURL(t *testing.T) {
	t.Parallel()

	req := NewDispatcher().Dispatch(model.SearchContext{QueryText: "EBH-0173", Mode: model.ModePlate, Page: 1})
	assert.Equal(t, "http://catalog/api/v1/plate-search/EBH0173?page=1&pageSize=16", req.URL("http://catalog/api/v1/"))
}
