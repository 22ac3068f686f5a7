package filter

import (
	"slices"

	"github.com/samber/lo"

	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/internal/service/facet"
	"github.com/you-humble/partexplorer/internal/service/transformer"
)

type predicate func(item model.RawResultItem) bool

// Apply filters one cached page. Predicates are ANDed; values selected within
// one dimension are ORed. Products keep the id they would get unfiltered, and
// facets are recomputed from the surviving items only. data is never mutated.
func Apply(data []model.RawResultItem, state model.ActiveFilterState, query string) model.FilterResult {
	predicates := build(state)

	items := make([]model.RawResultItem, 0, len(data))
	products := make([]model.Product, 0, len(data))
	for i, item := range data {
		if !matchAll(item, predicates) {
			continue
		}
		items = append(items, item)
		products = append(products, transformer.Transform(item, query, i))
	}

	return model.FilterResult{
		Items:    items,
		Products: products,
		Facets:   facet.Extract(items),
	}
}

func build(state model.ActiveFilterState) []predicate {
	var preds []predicate

	if state.Toggles.InStockOnly {
		preds = append(preds, inStock)
	}
	if !state.Toggles.IncludeObsolete {
		preds = append(preds, notObsolete)
	}

	manufacturers := state.Selected(model.FacetManufacturer)
	models := state.Selected(model.FacetModel)
	if len(manufacturers) > 0 || len(models) > 0 {
		preds = append(preds, vehicleFitment(manufacturers, models))
	}

	if v := state.Selected(model.FacetFamily); len(v) > 0 {
		preds = append(preds, taxonomyIn(v, func(f, _, _ string) string { return f }))
	}
	if v := state.Selected(model.FacetSubfamily); len(v) > 0 {
		preds = append(preds, taxonomyIn(v, func(_, s, _ string) string { return s }))
	}
	if v := state.Selected(model.FacetProductType); len(v) > 0 {
		preds = append(preds, taxonomyIn(v, func(_, _, p string) string { return p }))
	}
	if v := state.Selected(model.FacetLine); len(v) > 0 {
		preds = append(preds, lineIn(v))
	}
	if v := state.Selected(model.FacetBrand); len(v) > 0 {
		preds = append(preds, brandIn(v))
	}
	if v := state.Selected(model.FacetCEP); len(v) > 0 {
		preds = append(preds, cepIn(v))
	}

	return preds
}

func matchAll(item model.RawResultItem, preds []predicate) bool {
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}

func inStock(item model.RawResultItem) bool {
	return lo.SomeBy(item.Stocks, model.Stock.InStock)
}

// notObsolete drops an item as soon as one of its stock entries is obsolete.
func notObsolete(item model.RawResultItem) bool {
	return !lo.SomeBy(item.Stocks, func(s model.Stock) bool { return s.Obsolete })
}

// vehicleFitment requires one application entry to satisfy both selections,
// since a manufacturer/model pair names a single fitment.
func vehicleFitment(manufacturers, models []string) predicate {
	return func(item model.RawResultItem) bool {
		return lo.SomeBy(item.Applications, func(a model.Application) bool {
			if len(manufacturers) > 0 && !slices.Contains(manufacturers, a.Manufacturer) {
				return false
			}
			if len(models) > 0 && !slices.Contains(models, a.Model) {
				return false
			}
			return true
		})
	}
}

func taxonomyIn(selected []string, pick func(family, subfamily, productType string) string) predicate {
	return func(item model.RawResultItem) bool {
		return slices.Contains(selected, pick(facet.Taxonomy(item)))
	}
}

func lineIn(selected []string) predicate {
	return func(item model.RawResultItem) bool {
		return lo.SomeBy(item.Applications, func(a model.Application) bool {
			return slices.Contains(selected, a.Line)
		})
	}
}

func brandIn(selected []string) predicate {
	return func(item model.RawResultItem) bool {
		return lo.SomeBy(item.Names, func(n model.PartName) bool {
			return slices.Contains(selected, n.BrandName())
		})
	}
}

func cepIn(selected []string) predicate {
	return func(item model.RawResultItem) bool {
		return lo.SomeBy(item.Stocks, func(s model.Stock) bool {
			return s.Company != nil && slices.Contains(selected, s.Company.ZipCode)
		})
	}
}
