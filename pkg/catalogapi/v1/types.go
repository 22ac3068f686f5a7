// Package catalogapiv1 holds the wire types of the remote PartExplorer
// catalog API.
package catalogapiv1

// SearchResponse is returned by GET /search. Results is a pointer so a body
// without the field can be told apart from an empty page.
type SearchResponse struct {
	Results    *[]SearchResult `json:"results"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
	Query      string          `json:"query"`
}

// PlateSearchResponse is returned by GET /plate-search/{plate}.
type PlateSearchResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    *PlateData `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
	Details string     `json:"details,omitempty"`
}

type PlateData struct {
	Parts   *PlateParts `json:"parts"`
	CarInfo *CarInfo    `json:"car_info,omitempty"`
}

type PlateParts struct {
	Results *[]SearchResult `json:"results"`
	Total   int64           `json:"total"`
}

type CarInfo struct {
	Placa          string  `json:"placa"`
	Marca          string  `json:"marca"`
	Modelo         string  `json:"modelo"`
	Ano            string  `json:"ano"`
	AnoModelo      string  `json:"ano_modelo"`
	Cor            string  `json:"cor"`
	Combustivel    string  `json:"combustivel"`
	Municipio      string  `json:"municipio"`
	UF             string  `json:"uf"`
	CodigoFipe     string  `json:"codigo_fipe"`
	ValorFipe      string  `json:"valor_fipe"`
	Confiabilidade float64 `json:"confiabilidade"`
}

// ErrorResponse is the body of any non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type SearchResult struct {
	ID           string        `json:"id"`
	PartGroup    *PartGroup    `json:"part_group"`
	Names        []PartName    `json:"names"`
	Images       []Image       `json:"images"`
	Applications []Application `json:"applications"`
	Stocks       []Stock       `json:"stocks"`
	Score        float64       `json:"score"`
}

type PartGroup struct {
	ID           string       `json:"id"`
	Discontinued bool         `json:"discontinued"`
	ProductType  *ProductType `json:"product_type"`
}

type ProductType struct {
	Description string     `json:"description"`
	Subfamily   *Subfamily `json:"subfamily"`
}

type Subfamily struct {
	Description string  `json:"description"`
	Family      *Family `json:"family"`
}

type Family struct {
	Description string `json:"description"`
}

type PartName struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	BrandID string `json:"brand_id"`
	Brand   *Brand `json:"brand"`
}

type Brand struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

type Application struct {
	Line           string     `json:"line"`
	Manufacturer   string     `json:"manufacturer"`
	Model          string     `json:"model"`
	Version        string     `json:"version"`
	Generation     string     `json:"generation"`
	Engine         string     `json:"engine"`
	Body           string     `json:"body"`
	Fuel           string     `json:"fuel"`
	YearStart      *int       `json:"year_start"`
	YearEnd        *int       `json:"year_end"`
	Reliable       bool       `json:"reliable"`
	Adaptation     bool       `json:"adaptation"`
	AdditionalInfo string     `json:"additional_info"`
	Cylinders      FlexString `json:"cylinders"`
	HP             FlexString `json:"hp"`
	Image          string     `json:"image"`
}

type Stock struct {
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Obsolete bool     `json:"obsolete"`
	Company  *Company `json:"company"`
}

type Company struct {
	Name         string `json:"name"`
	GroupName    string `json:"group_name"`
	ImageURL     string `json:"image_url"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Country      string `json:"country"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Phone        string `json:"phone"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Website      string `json:"website"`
}

type CompaniesResponse struct {
	Companies []Company `json:"companies"`
	Total     int       `json:"total"`
}

type BrandsResponse struct {
	Brands []Brand `json:"brands"`
	Total  int     `json:"total"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
	Total  int      `json:"total"`
}
