package model

// RawResultItem is one catalog record after boundary validation. Every
// nested reference is optional and string fields are empty when absent.
type RawResultItem struct {
	ID           string        `json:"id,omitempty"`
	PartGroup    *PartGroup    `json:"part_group,omitempty"`
	Names        []PartName    `json:"names,omitempty"`
	Applications []Application `json:"applications,omitempty"`
	Images       []Image       `json:"images,omitempty"`
	Stocks       []Stock       `json:"stocks,omitempty"`
	Score        float64       `json:"score,omitempty"`
}

type PartGroup struct {
	ID           string       `json:"id,omitempty"`
	Discontinued bool         `json:"discontinued,omitempty"`
	ProductType  *ProductType `json:"product_type,omitempty"`
}

type ProductType struct {
	Description string     `json:"description,omitempty"`
	Subfamily   *Subfamily `json:"subfamily,omitempty"`
}

type Subfamily struct {
	Description string  `json:"description,omitempty"`
	Family      *Family `json:"family,omitempty"`
}

type Family struct {
	Description string `json:"description,omitempty"`
}

type NameType string

const (
	NameTypeSKU  NameType = "sku"
	NameTypeDesc NameType = "desc"
)

type PartName struct {
	Name    string   `json:"name"`
	Type    NameType `json:"type"`
	BrandID string   `json:"brand_id,omitempty"`
	Brand   *Brand   `json:"brand,omitempty"`
}

// BrandName returns the attached brand name or "".
func (n PartName) BrandName() string {
	if n.Brand == nil {
		return ""
	}
	return n.Brand.Name
}

type Brand struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

type Application struct {
	Line           string `json:"line,omitempty"`
	Manufacturer   string `json:"manufacturer,omitempty"`
	Model          string `json:"model,omitempty"`
	Version        string `json:"version,omitempty"`
	Generation     string `json:"generation,omitempty"`
	Engine         string `json:"engine,omitempty"`
	Body           string `json:"body,omitempty"`
	Fuel           string `json:"fuel,omitempty"`
	YearStart      *int   `json:"year_start,omitempty"`
	YearEnd        *int   `json:"year_end,omitempty"`
	Reliable       bool   `json:"reliable,omitempty"`
	Adaptation     bool   `json:"adaptation,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	Cylinders      string `json:"cylinders,omitempty"`
	HP             string `json:"hp,omitempty"`
	Image          string `json:"image,omitempty"`
}

type Image struct {
	URL string `json:"url"`
}

type Stock struct {
	Quantity *int     `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Obsolete bool     `json:"obsolete,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

// InStock reports a known, positive quantity.
func (s Stock) InStock() bool {
	return s.Quantity != nil && *s.Quantity > 0
}

type Company struct {
	Name         string `json:"name"`
	GroupName    string `json:"group_name,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
	Email        string `json:"email,omitempty"`
	Website      string `json:"website,omitempty"`
}

// VehicleInfo is the car data a plate lookup returns alongside parts.
type VehicleInfo struct {
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

// CatalogPage is one decoded page from the remote catalog.
type CatalogPage struct {
	Items   []RawResultItem
	Total   int64
	Vehicle *VehicleInfo
}
