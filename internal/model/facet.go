package model

import (
	"fmt"
	"slices"
	"strings"
)

type FacetDimension string

const (
	FacetFamily       FacetDimension = "family"
	FacetSubfamily    FacetDimension = "subfamily"
	FacetProductType  FacetDimension = "product_type"
	FacetLine         FacetDimension = "line"
	FacetManufacturer FacetDimension = "manufacturer"
	FacetModel        FacetDimension = "model"
	FacetBrand        FacetDimension = "brand"
	FacetCEP          FacetDimension = "cep"
)

var FacetDimensions = []FacetDimension{
	FacetFamily,
	FacetSubfamily,
	FacetProductType,
	FacetLine,
	FacetManufacturer,
	FacetModel,
	FacetBrand,
	FacetCEP,
}

func ParseFacetDimension(s string) (FacetDimension, error) {
	d := FacetDimension(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(FacetDimensions, d) {
		return "", fmt.Errorf("%w: unknown facet dimension %q", ErrValidation, s)
	}
	return d, nil
}

// FacetSet holds the distinct values available per dimension for one page.
type FacetSet struct {
	Families      []string `json:"families"`
	Subfamilies   []string `json:"subfamilies"`
	ProductTypes  []string `json:"product_types"`
	Lines         []string `json:"lines"`
	Manufacturers []string `json:"manufacturers"`
	Models        []string `json:"models"`
	Brands        []string `json:"brands"`
	CEPs          []string `json:"ceps"`
}

func NewFacetSet() FacetSet {
	return FacetSet{
		Families:      []string{},
		Subfamilies:   []string{},
		ProductTypes:  []string{},
		Lines:         []string{},
		Manufacturers: []string{},
		Models:        []string{},
		Brands:        []string{},
		CEPs:          []string{},
	}
}

func (f FacetSet) Values(d FacetDimension) []string {
	switch d {
	case FacetFamily:
		return f.Families
	case FacetSubfamily:
		return f.Subfamilies
	case FacetProductType:
		return f.ProductTypes
	case FacetLine:
		return f.Lines
	case FacetManufacturer:
		return f.Manufacturers
	case FacetModel:
		return f.Models
	case FacetBrand:
		return f.Brands
	case FacetCEP:
		return f.CEPs
	default:
		return nil
	}
}

func (f FacetSet) Clone() FacetSet {
	return FacetSet{
		Families:      slices.Clone(f.Families),
		Subfamilies:   slices.Clone(f.Subfamilies),
		ProductTypes:  slices.Clone(f.ProductTypes),
		Lines:         slices.Clone(f.Lines),
		Manufacturers: slices.Clone(f.Manufacturers),
		Models:        slices.Clone(f.Models),
		Brands:        slices.Clone(f.Brands),
		CEPs:          slices.Clone(f.CEPs),
	}
}

// ActiveFilterState is the visitor's facet selection plus the two toggles.
// Methods return modified copies and never touch the receiver.
type ActiveFilterState struct {
	Selections map[FacetDimension][]string `json:"selections"`
	Toggles    Toggles                     `json:"toggles"`
}

func (s ActiveFilterState) Selected(d FacetDimension) []string {
	return s.Selections[d]
}

func (s ActiveFilterState) IsSelected(d FacetDimension, value string) bool {
	return slices.Contains(s.Selections[d], value)
}

// HasSelections reports whether any facet value is selected.
func (s ActiveFilterState) HasSelections() bool {
	for _, values := range s.Selections {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// WithToggled adds value to dimension d, or removes it if already selected.
func (s ActiveFilterState) WithToggled(d FacetDimension, value string) ActiveFilterState {
	out := s.Clone()

	current := out.Selections[d]
	if idx := slices.Index(current, value); idx >= 0 {
		current = slices.Delete(current, idx, idx+1)
	} else {
		current = append(current, value)
	}

	if len(current) == 0 {
		delete(out.Selections, d)
	} else {
		out.Selections[d] = current
	}
	return out
}

func (s ActiveFilterState) WithToggles(t Toggles) ActiveFilterState {
	out := s.Clone()
	out.Toggles = t
	return out
}

// Cleared drops every facet selection and keeps the toggles.
func (s ActiveFilterState) Cleared() ActiveFilterState {
	return ActiveFilterState{
		Selections: map[FacetDimension][]string{},
		Toggles:    s.Toggles,
	}
}

// Clone returns a deep copy.
func (s ActiveFilterState) Clone() ActiveFilterState {
	out := ActiveFilterState{
		Selections: make(map[FacetDimension][]string, len(s.Selections)),
		Toggles:    s.Toggles,
	}
	for d, values := range s.Selections {
		out.Selections[d] = slices.Clone(values)
	}
	return out
}
