package converter

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/partexplorer/internal/model"
	partexplorerv1 "github.com/you-humble/partexplorer/pkg/api/partexplorer/v1"
)

func SearchRequestToInput(req partexplorerv1.SearchRequest) (model.SearchInput, error) {
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		return model.SearchInput{}, err
	}

	return model.SearchInput{
		Query: req.Query,
		Mode:  mode,
		Location: model.LocationFilter{
			State: strings.TrimSpace(req.State),
			City:  strings.TrimSpace(req.City),
			CEP:   strings.TrimSpace(req.CEP),
		},
	}, nil
}

func TogglesRequestToModel(req partexplorerv1.TogglesRequest) model.Toggles {
	return model.Toggles{
		IncludeObsolete: req.IncludeObsolete,
		InStockOnly:     req.InStockOnly,
	}
}

func FacetToggleRequestToModel(req partexplorerv1.FacetToggleRequest) (model.FacetDimension, string, error) {
	d, err := model.ParseFacetDimension(req.Dimension)
	if err != nil {
		return "", "", err
	}
	if req.Value == "" {
		return "", "", fmt.Errorf("%w: facet value is required", model.ErrValidation)
	}

	return d, req.Value, nil
}

func ViewToResponse(v model.View) partexplorerv1.View {
	return partexplorerv1.View{
		State: v.State.String(),
		Query: v.Query,
		Mode:  string(v.Mode),
		Location: partexplorerv1.Location{
			State: v.Location.State,
			City:  v.Location.City,
			CEP:   v.Location.CEP,
		},
		Page:          v.Page,
		PageSize:      v.PageSize,
		TotalPages:    v.TotalPages,
		TotalResults:  v.TotalResults,
		FilteredCount: v.FilteredCount,
		Products:      lo.Map(v.Products, func(p model.Product, _ int) partexplorerv1.Product { return productToResponse(p) }),
		Facets:        facetsToResponse(v.Facets),
		Filters:       filtersToResponse(v.Filters),
		Selected:      productPtrToResponse(v.Selected),
		Vehicle:       vehicleToResponse(v.Vehicle),
		Error:         v.Error,
		IsLoading:     v.IsLoading(),
	}
}

func productToResponse(p model.Product) partexplorerv1.Product {
	return partexplorerv1.Product{
		ID:         p.ID,
		Title:      p.Title,
		PartNumber: p.PartNumber,
		Image:      p.Image,
		Brand:      p.Brand,
	}
}

func productPtrToResponse(p *model.Product) *partexplorerv1.Product {
	if p == nil {
		return nil
	}
	out := productToResponse(*p)
	return &out
}

// facetsToResponse never emits null arrays.
func facetsToResponse(f model.FacetSet) partexplorerv1.Facets {
	orEmpty := func(values []string) []string {
		if values == nil {
			return []string{}
		}
		return values
	}

	return partexplorerv1.Facets{
		Families:      orEmpty(f.Families),
		Subfamilies:   orEmpty(f.Subfamilies),
		ProductTypes:  orEmpty(f.ProductTypes),
		Lines:         orEmpty(f.Lines),
		Manufacturers: orEmpty(f.Manufacturers),
		Models:        orEmpty(f.Models),
		Brands:        orEmpty(f.Brands),
		CEPs:          orEmpty(f.CEPs),
	}
}

func filtersToResponse(s model.ActiveFilterState) partexplorerv1.Filters {
	selections := make(map[string][]string, len(s.Selections))
	for d, values := range s.Selections {
		if len(values) > 0 {
			selections[string(d)] = values
		}
	}

	return partexplorerv1.Filters{
		Selections:      selections,
		IncludeObsolete: s.Toggles.IncludeObsolete,
		InStockOnly:     s.Toggles.InStockOnly,
	}
}

func vehicleToResponse(v *model.VehicleInfo) *partexplorerv1.Vehicle {
	if v == nil {
		return nil
	}

	return &partexplorerv1.Vehicle{
		Plate:      v.Plate,
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		ModelYear:  v.ModelYear,
		Color:      v.Color,
		Fuel:       v.Fuel,
		City:       v.City,
		State:      v.State,
		FipeCode:   v.FipeCode,
		FipeValue:  v.FipeValue,
		Confidence: v.Confidence,
	}
}

func CompaniesToResponse(companies []model.ReferenceCompany) partexplorerv1.CompaniesResponse {
	return partexplorerv1.CompaniesResponse{
		Companies: lo.Map(companies, func(c model.ReferenceCompany, _ int) partexplorerv1.Company {
			return partexplorerv1.Company{
				Name:      c.Name,
				GroupName: c.GroupName,
				City:      c.City,
				State:     c.State,
				ZipCode:   c.ZipCode,
				ImageURL:  c.ImageURL,
			}
		}),
		Total: len(companies),
	}
}

func BrandsToResponse(brands []model.ReferenceBrand) partexplorerv1.BrandsResponse {
	return partexplorerv1.BrandsResponse{
		Brands: lo.Map(brands, func(b model.ReferenceBrand, _ int) partexplorerv1.Brand {
			return partexplorerv1.Brand{Name: b.Name, LogoURL: b.LogoURL}
		}),
		Total: len(brands),
	}
}

func CitiesToResponse(cities []string) partexplorerv1.CitiesResponse {
	if cities == nil {
		cities = []string{}
	}
	return partexplorerv1.CitiesResponse{Cities: cities, Total: len(cities)}
}

func StatesToResponse(states []string) partexplorerv1.StatesResponse {
	if states == nil {
		states = []string{}
	}
	return partexplorerv1.StatesResponse{States: states, Total: len(states)}
}

func TrendingToResponse(terms []model.TrendingTerm) partexplorerv1.TrendingResponse {
	return partexplorerv1.TrendingResponse{
		Terms: lo.Map(terms, func(t model.TrendingTerm, _ int) partexplorerv1.TrendingTerm {
			return partexplorerv1.TrendingTerm{Query: t.Query, Count: t.Count}
		}),
	}
}
