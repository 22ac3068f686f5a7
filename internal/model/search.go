package model

import (
	"fmt"
	"strings"
)

// PageSize is the fixed page length requested from the catalog.
const PageSize = 16

type Mode string

const (
	ModeCatalog Mode = "catalog"
	ModeFind    Mode = "find"
	ModePlate   Mode = "plate"
	ModeCompany Mode = "company"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeCatalog, ModeFind, ModePlate, ModeCompany:
		return m, nil
	case "":
		return "", nil
	default:
		return "", fmt.Errorf("%w: unknown search mode %q", ErrValidation, s)
	}
}

type LocationFilter struct {
	State string `json:"state,omitempty"`
	City  string `json:"city,omitempty"`
	CEP   string `json:"cep,omitempty"`
}

func (l LocationFilter) IsEmpty() bool {
	return l.State == "" && l.City == "" && l.CEP == ""
}

type Toggles struct {
	IncludeObsolete bool `json:"include_obsolete"`
	InStockOnly     bool `json:"in_stock_only"`
}

// SearchContext is everything a single dispatch needs. It is passed by value
// so one dispatch cycle never observes later mutations.
type SearchContext struct {
	QueryText string
	Mode      Mode
	Page      int
	Location  LocationFilter
	Toggles   Toggles
}

// SearchInput is a new top-level search as typed by the visitor.
type SearchInput struct {
	Query    string
	Mode     Mode
	Location LocationFilter
}
