package model

type ReferenceCompany struct {
	Name      string
	GroupName string
	City      string
	State     string
	ZipCode   string
	ImageURL  string
}

type ReferenceBrand struct {
	Name    string
	LogoURL string
}

// ReferenceData bundles the lookup lists used for disambiguation and
// location dropdowns.
type ReferenceData struct {
	Companies []ReferenceCompany
	Brands    []ReferenceBrand
	Cities    []string
}
