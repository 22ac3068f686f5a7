package filter

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partexplorer/internal/model"
)

func qty(n int) *int { return &n }

func part(id string, opts ...func(*model.RawResultItem)) model.RawResultItem {
	it := model.RawResultItem{
		ID:    id,
		Names: []model.PartName{{Name: "SKU-" + id, Type: model.NameTypeSKU}},
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

func withStock(quantity int, obsolete bool) func(*model.RawResultItem) {
	return func(it *model.RawResultItem) {
		it.Stocks = append(it.Stocks, model.Stock{Quantity: qty(quantity), Obsolete: obsolete})
	}
}

func withFitment(line, manufacturer, vehicle string) func(*model.RawResultItem) {
	return func(it *model.RawResultItem) {
		it.Applications = append(it.Applications, model.Application{
			Line: line, Manufacturer: manufacturer, Model: vehicle,
		})
	}
}

func withBrand(brand string) func(*model.RawResultItem) {
	return func(it *model.RawResultItem) {
		it.Names = append(it.Names, model.PartName{
			Name: gofakeit.LetterN(6), Type: model.NameTypeSKU, Brand: &model.Brand{Name: brand},
		})
	}
}

func withFamily(family string) func(*model.RawResultItem) {
	return func(it *model.RawResultItem) {
		it.PartGroup = &model.PartGroup{ProductType: &model.ProductType{
			Description: family + " tipo",
			Subfamily: &model.Subfamily{
				Description: family + " sub",
				Family:      &model.Family{Description: family},
			},
		}}
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func state(toggles model.Toggles, selections map[model.FacetDimension][]string) model.ActiveFilterState {
	if selections == nil {
		selections = map[model.FacetDimension][]string{}
	}
	return model.ActiveFilterState{Selections: selections, Toggles: toggles}
}

func TestApply(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		data   []model.RawResultItem
		state  model.ActiveFilterState
		assert func(t *testing.T, res model.FilterResult)
	}

	tests := []testCase{
		{
			name: "obsolete hidden by default: one of three dropped",
			data: []model.RawResultItem{
				part("a", withStock(1, false)),
				part("b", withStock(0, true)),
				part("c", withStock(2, false)),
			},
			state: state(model.Toggles{}, nil),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"a", "c"}, ids(res.Products))
			},
		},
		{
			name: "obsolete: any obsolete stock entry hides the item",
			data: []model.RawResultItem{
				part("mixed", withStock(3, false), withStock(1, true)),
				part("clean", withStock(3, false)),
			},
			state: state(model.Toggles{}, nil),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"clean"}, ids(res.Products))
			},
		},
		{
			name: "obsolete: toggle includes them",
			data: []model.RawResultItem{
				part("a", withStock(1, false)),
				part("b", withStock(0, true)),
			},
			state: state(model.Toggles{IncludeObsolete: true}, nil),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"a", "b"}, ids(res.Products))
			},
		},
		{
			name: "in stock only: needs one positive quantity",
			data: []model.RawResultItem{
				part("zero", withStock(0, false)),
				part("some", withStock(0, false), withStock(4, false)),
				part("none"),
				{ID: "nil-qty", Stocks: []model.Stock{{}}},
			},
			state: state(model.Toggles{InStockOnly: true}, nil),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"some"}, ids(res.Products))
			},
		},
		{
			name: "manufacturer and model evaluated on the same application",
			data: []model.RawResultItem{
				part("crossed", withFitment("Leve", "VW", "Uno"), withFitment("Leve", "Fiat", "Gol")),
				part("match", withFitment("Leve", "VW", "Gol")),
			},
			state: state(model.Toggles{}, map[model.FacetDimension][]string{
				model.FacetManufacturer: {"VW"},
				model.FacetModel:        {"Gol"},
			}),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"match"}, ids(res.Products))
			},
		},
		{
			name: "manufacturer only: OR within the dimension",
			data: []model.RawResultItem{
				part("vw", withFitment("Leve", "VW", "Gol")),
				part("fiat", withFitment("Leve", "Fiat", "Uno")),
				part("ford", withFitment("Leve", "Ford", "Ka")),
				part("no-apps"),
			},
			state: state(model.Toggles{}, map[model.FacetDimension][]string{
				model.FacetManufacturer: {"VW", "Fiat"},
			}),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"vw", "fiat"}, ids(res.Products))
			},
		},
		{
			name: "brand and family: AND across dimensions",
			data: []model.RawResultItem{
				part("both", withBrand("Cobreq"), withFamily("Freios")),
				part("brand-only", withBrand("Cobreq"), withFamily("Filtros")),
				part("family-only", withBrand("Wega"), withFamily("Freios")),
			},
			state: state(model.Toggles{}, map[model.FacetDimension][]string{
				model.FacetBrand:  {"Cobreq"},
				model.FacetFamily: {"Freios"},
			}),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"both"}, ids(res.Products))
				assert.Equal(t, []string{"Freios"}, res.Facets.Families)
			},
		},
		{
			name: "subfamily, product type and line",
			data: []model.RawResultItem{
				part("a", withFamily("Freios"), withFitment("Pesada", "Volvo", "FH")),
				part("b", withFamily("Freios"), withFitment("Leve", "VW", "Gol")),
			},
			state: state(model.Toggles{}, map[model.FacetDimension][]string{
				model.FacetSubfamily:   {"Freios sub"},
				model.FacetProductType: {"Freios tipo"},
				model.FacetLine:        {"Pesada"},
			}),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"a"}, ids(res.Products))
			},
		},
		{
			name: "cep selection matches stock company zip code",
			data: []model.RawResultItem{
				{ID: "sp", Stocks: []model.Stock{{Quantity: qty(1), Company: &model.Company{ZipCode: "01310-100"}}}},
				{ID: "rs", Stocks: []model.Stock{{Quantity: qty(1), Company: &model.Company{ZipCode: "90000-000"}}}},
			},
			state: state(model.Toggles{}, map[model.FacetDimension][]string{
				model.FacetCEP: {"90000-000"},
			}),
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []string{"rs"}, ids(res.Products))
			},
		},
		{
			name: "ids stay those of the unfiltered page",
			data: []model.RawResultItem{
				{Stocks: []model.Stock{{Obsolete: true}}},
				{},
			},
			state: state(model.Toggles{}, nil),
			assert: func(t *testing.T, res model.FilterResult) {
				require.Len(t, res.Products, 1)
				assert.Equal(t, "product_1", res.Products[0].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.assert(t, Apply(tt.data, tt.state, ""))
		})
	}
}

func TestApplyIsIdempotentAndPure(t *testing.T) {
	t.Parallel()

	data := []model.RawResultItem{
		part("a", withStock(1, false), withBrand("Cobreq"), withFitment("Leve", "VW", "Gol")),
		part("b", withStock(0, true), withBrand("Wega")),
		part("c", withStock(5, false), withBrand("Wega"), withFitment("Leve", "Fiat", "Uno")),
	}
	snapshot := make([]model.RawResultItem, len(data))
	copy(snapshot, data)

	st := state(model.Toggles{}, map[model.FacetDimension][]string{
		model.FacetBrand: {"Wega", "Cobreq"},
	})

	first := Apply(data, st, "")
	second := Apply(data, st, "")

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, data)
}

func TestApplyNarrowsModelFacet(t *testing.T) {
	t.Parallel()

	data := []model.RawResultItem{
		part("a", withFitment("Leve", "VW", "Gol"), withFitment("Leve", "VW", "Polo")),
		part("b", withFitment("Leve", "Fiat", "Uno")),
		part("c", withFitment("Leve", "Ford", "Ka")),
	}

	before := Apply(data, state(model.Toggles{}, nil), "")
	after := Apply(data, state(model.Toggles{}, map[model.FacetDimension][]string{
		model.FacetManufacturer: {"VW"},
	}), "")

	assert.LessOrEqual(t, len(after.Facets.Models), len(before.Facets.Models))
	assert.Equal(t, []string{"Gol", "Polo"}, after.Facets.Models)
}
