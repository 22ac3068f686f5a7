// Package partexplorerv1 holds the JSON contract of the PartExplorer BFF API.
package partexplorerv1

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ======= Requests =======

type SearchRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode,omitempty"`
	State string `json:"state,omitempty"`
	City  string `json:"city,omitempty"`
	CEP   string `json:"cep,omitempty"`
}

type PageRequest struct {
	Page int `json:"page"`
}

type TogglesRequest struct {
	IncludeObsolete bool `json:"include_obsolete"`
	InStockOnly     bool `json:"in_stock_only"`
}

type FacetToggleRequest struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
}

type DetailRequest struct {
	ProductID string `json:"product_id"`
}

// ======= Responses =======

type SessionCreatedResponse struct {
	SessionID string `json:"session_id"`
	View      View   `json:"view"`
}

type View struct {
	State         string    `json:"state"`
	Query         string    `json:"query"`
	Mode          string    `json:"mode"`
	Location      Location  `json:"location"`
	Page          int       `json:"page"`
	PageSize      int       `json:"page_size"`
	TotalPages    int       `json:"total_pages"`
	TotalResults  int64     `json:"total_results"`
	FilteredCount int       `json:"filtered_count"`
	Products      []Product `json:"products"`
	Facets        Facets    `json:"facets"`
	Filters       Filters   `json:"filters"`
	Selected      *Product  `json:"selected"`
	Vehicle       *Vehicle  `json:"vehicle"`
	Error         string    `json:"error,omitempty"`
	IsLoading     bool      `json:"is_loading"`
}

type Location struct {
	State string `json:"state,omitempty"`
	City  string `json:"city,omitempty"`
	CEP   string `json:"cep,omitempty"`
}

type Product struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PartNumber string `json:"part_number"`
	Image      string `json:"image"`
	Brand      string `json:"brand,omitempty"`
}

type Facets struct {
	Families      []string `json:"families"`
	Subfamilies   []string `json:"subfamilies"`
	ProductTypes  []string `json:"product_types"`
	Lines         []string `json:"lines"`
	Manufacturers []string `json:"manufacturers"`
	Models        []string `json:"models"`
	Brands        []string `json:"brands"`
	CEPs          []string `json:"ceps"`
}

type Filters struct {
	Selections      map[string][]string `json:"selections"`
	IncludeObsolete bool                `json:"include_obsolete"`
	InStockOnly     bool                `json:"in_stock_only"`
}

type Vehicle struct {
	Plate      string  `json:"plate"`
	Make       string  `json:"make,omitempty"`
	Model      string  `json:"model,omitempty"`
	Year       string  `json:"year,omitempty"`
	ModelYear  string  `json:"model_year,omitempty"`
	Color      string  `json:"color,omitempty"`
	Fuel       string  `json:"fuel,omitempty"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	FipeCode   string  `json:"fipe_code,omitempty"`
	FipeValue  string  `json:"fipe_value,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type Company struct {
	Name      string `json:"name"`
	GroupName string `json:"group_name,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

type CompaniesResponse struct {
	Companies []Company `json:"companies"`
	Total     int       `json:"total"`
}

type Brand struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

type BrandsResponse struct {
	Brands []Brand `json:"brands"`
	Total  int     `json:"total"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
	Total  int      `json:"total"`
}

type StatesResponse struct {
	States []string `json:"states"`
	Total  int      `json:"total"`
}

type TrendingTerm struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type TrendingResponse struct {
	Terms []TrendingTerm `json:"terms"`
}
