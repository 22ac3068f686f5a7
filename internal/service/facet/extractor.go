package facet

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/partexplorer/internal/model"
)

// BrandSentinel is the catalog's "no brand" marker and never becomes a facet.
const BrandSentinel = "N/A"

type valueSet map[string]struct{}

func (s valueSet) add(v string) {
	if strings.TrimSpace(v) == "" {
		return
	}
	s[v] = struct{}{}
}

func (s valueSet) sorted() []string {
	values := lo.Keys(map[string]struct{}(s))
	slices.Sort(values)
	return values
}

// Extract derives the distinct facet values present in items. Values are kept
// as received (case-sensitive) and returned sorted.
func Extract(items []model.RawResultItem) model.FacetSet {
	var (
		families      = valueSet{}
		subfamilies   = valueSet{}
		productTypes  = valueSet{}
		lines         = valueSet{}
		manufacturers = valueSet{}
		models        = valueSet{}
		brands        = valueSet{}
		ceps          = valueSet{}
	)

	for _, item := range items {
		for _, app := range item.Applications {
			lines.add(app.Line)
			manufacturers.add(app.Manufacturer)
			models.add(app.Model)
		}

		family, subfamily, productType := Taxonomy(item)
		families.add(family)
		subfamilies.add(subfamily)
		productTypes.add(productType)

		for _, n := range item.Names {
			if name := n.BrandName(); name != BrandSentinel {
				brands.add(name)
			}
		}

		for _, s := range item.Stocks {
			if s.Company != nil {
				ceps.add(s.Company.ZipCode)
			}
		}
	}

	return model.FacetSet{
		Families:      families.sorted(),
		Subfamilies:   subfamilies.sorted(),
		ProductTypes:  productTypes.sorted(),
		Lines:         lines.sorted(),
		Manufacturers: manufacturers.sorted(),
		Models:        models.sorted(),
		Brands:        brands.sorted(),
		CEPs:          ceps.sorted(),
	}
}

// Taxonomy walks part_group → product_type → subfamily → family. Missing
// links yield empty strings.
func Taxonomy(item model.RawResultItem) (family, subfamily, productType string) {
	if item.PartGroup == nil || item.PartGroup.ProductType == nil {
		return "", "", ""
	}

	pt := item.PartGroup.ProductType
	productType = pt.Description
	if pt.Subfamily == nil {
		return "", "", productType
	}

	subfamily = pt.Subfamily.Description
	if pt.Subfamily.Family != nil {
		family = pt.Subfamily.Family.Description
	}
	return family, subfamily, productType
}
