package dispatcher

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/you-humble/partexplorer/internal/model"
)

const (
	paramQuery           = "q"
	paramPage            = "page"
	paramPageSize        = "page_size"
	paramPlatePageSize   = "pageSize"
	paramState           = "state"
	paramCity            = "city"
	paramCEP             = "cep"
	paramCompany         = "company"
	paramSearchMode      = "searchMode"
	paramIncludeObsolete = "include_obsolete"
	paramAvailableOnly   = "available_only"

	searchModeFind = "find"
)

var (
	oldPlatePattern      = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

type dispatcher struct{}

func NewDispatcher() *dispatcher { return &dispatcher{} }

// Dispatch maps a search context onto the catalog endpoint and parameters
// that serve it. It never fails: an empty query still yields a broad search.
func (d *dispatcher) Dispatch(sc model.SearchContext) model.CatalogRequest {
	page := max(sc.Page, 1)
	query := strings.TrimSpace(sc.QueryText)

	if sc.Mode == model.ModePlate {
		return plateRequest(NormalizePlate(query)).
			Int(paramPage, page).
			Int(paramPlatePageSize, model.PageSize).
			Toggles(sc.Toggles).
			Build()
	}

	b := searchRequest()
	loc := sc.Location

	switch {
	case sc.Mode == model.ModeCompany:
		b = b.Set(paramCompany, query).Set(paramSearchMode, searchModeFind)
	case sc.Mode == model.ModeFind && query == "" && loc.City != "":
		b = b.Set(paramCity, loc.City)
	case sc.Mode == model.ModeFind && query == "" && loc.State != "":
		b = b.Set(paramState, loc.State)
	default:
		b = b.Set(paramQuery, query)
		if sc.Mode == model.ModeFind && query != "" && !loc.IsEmpty() {
			b = b.Set(paramState, loc.State).
				Set(paramCity, loc.City).
				Set(paramCEP, loc.CEP)
		}
	}

	return b.Int(paramPageSize, model.PageSize).
		Int(paramPage, page).
		Flag(paramIncludeObsolete, sc.Toggles.IncludeObsolete).
		Flag(paramAvailableOnly, sc.Toggles.InStockOnly).
		Toggles(sc.Toggles).
		Build()
}

// NormalizePlate drops separators and upper-cases the rest.
func NormalizePlate(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// IsPlate matches the old (ABC1234) and Mercosul (ABC1D23) formats after
// normalization.
func IsPlate(raw string) bool {
	plate := NormalizePlate(raw)
	return oldPlatePattern.MatchString(plate) || mercosulPlatePattern.MatchString(plate)
}
