package model

// Product is the only record shape the presentation layer consumes.
type Product struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PartNumber string `json:"part_number"`
	Image      string `json:"image"`
	Brand      string `json:"brand,omitempty"`
}

// CacheEntry is a transformed page bundle. OriginalData keeps the raw items so
// facet selections can be re-applied without the network.
type CacheEntry struct {
	Products     []Product       `json:"products"`
	Total        int64           `json:"total"`
	OriginalData []RawResultItem `json:"original_data"`
	Facets       FacetSet        `json:"facets"`
	Vehicle      *VehicleInfo    `json:"vehicle,omitempty"`
}

func EmptyCacheEntry() CacheEntry {
	return CacheEntry{
		Products:     []Product{},
		OriginalData: []RawResultItem{},
		Facets:       NewFacetSet(),
	}
}

// Clone returns a copy whose slices can be mutated without touching e.
func (e CacheEntry) Clone() CacheEntry {
	out := CacheEntry{
		Products:     append([]Product(nil), e.Products...),
		Total:        e.Total,
		OriginalData: append([]RawResultItem(nil), e.OriginalData...),
		Facets:       e.Facets.Clone(),
	}
	if e.Vehicle != nil {
		v := *e.Vehicle
		out.Vehicle = &v
	}
	if out.Products == nil {
		out.Products = []Product{}
	}
	if out.OriginalData == nil {
		out.OriginalData = []RawResultItem{}
	}
	return out
}

// FilterResult is what the filter engine derives from one cached page.
type FilterResult struct {
	Items    []RawResultItem
	Products []Product
	Facets   FacetSet
}
