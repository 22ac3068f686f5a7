package converter

import (
	"strings"

	"github.com/you-humble/partexplorer/internal/model"
	catalogv1 "github.com/you-humble/partexplorer/pkg/catalogapi/v1"
)

func SearchResultsToModel(results []catalogv1.SearchResult) []model.RawResultItem {
	res := make([]model.RawResultItem, len(results))
	for i := range results {
		res[i] = searchResultToModel(results[i])
	}

	return res
}

func searchResultToModel(r catalogv1.SearchResult) model.RawResultItem {
	return model.RawResultItem{
		ID:           strings.TrimSpace(r.ID),
		PartGroup:    partGroupToModel(r.PartGroup),
		Names:        namesToModel(r.Names),
		Applications: applicationsToModel(r.Applications),
		Images:       imagesToModel(r.Images),
		Stocks:       stocksToModel(r.Stocks),
		Score:        r.Score,
	}
}

func partGroupToModel(g *catalogv1.PartGroup) *model.PartGroup {
	if g == nil {
		return nil
	}

	out := &model.PartGroup{
		ID:           g.ID,
		Discontinued: g.Discontinued,
	}
	if pt := g.ProductType; pt != nil {
		out.ProductType = &model.ProductType{Description: pt.Description}
		if sf := pt.Subfamily; sf != nil {
			out.ProductType.Subfamily = &model.Subfamily{Description: sf.Description}
			if f := sf.Family; f != nil {
				out.ProductType.Subfamily.Family = &model.Family{Description: f.Description}
			}
		}
	}

	return out
}

func namesToModel(names []catalogv1.PartName) []model.PartName {
	if len(names) == 0 {
		return nil
	}

	res := make([]model.PartName, 0, len(names))
	for _, n := range names {
		pn := model.PartName{
			Name:    n.Name,
			Type:    model.NameType(strings.ToLower(strings.TrimSpace(n.Type))),
			BrandID: n.BrandID,
		}
		if n.Brand != nil {
			pn.Brand = &model.Brand{Name: n.Brand.Name, LogoURL: n.Brand.LogoURL}
		}
		res = append(res, pn)
	}

	return res
}

func applicationsToModel(apps []catalogv1.Application) []model.Application {
	if len(apps) == 0 {
		return nil
	}

	res := make([]model.Application, len(apps))
	for i, a := range apps {
		res[i] = model.Application{
			Line:           a.Line,
			Manufacturer:   a.Manufacturer,
			Model:          a.Model,
			Version:        a.Version,
			Generation:     a.Generation,
			Engine:         a.Engine,
			Body:           a.Body,
			Fuel:           a.Fuel,
			YearStart:      copyPtr(a.YearStart),
			YearEnd:        copyPtr(a.YearEnd),
			Reliable:       a.Reliable,
			Adaptation:     a.Adaptation,
			AdditionalInfo: a.AdditionalInfo,
			Cylinders:      string(a.Cylinders),
			HP:             string(a.HP),
			Image:          a.Image,
		}
	}

	return res
}

// imagesToModel keeps entries without a URL so the first entry stays first.
func imagesToModel(images []catalogv1.Image) []model.Image {
	if len(images) == 0 {
		return nil
	}

	res := make([]model.Image, 0, len(images))
	for _, img := range images {
		res = append(res, model.Image{URL: strings.TrimSpace(img.URL)})
	}

	return res
}

func stocksToModel(stocks []catalogv1.Stock) []model.Stock {
	if len(stocks) == 0 {
		return nil
	}

	res := make([]model.Stock, len(stocks))
	for i, s := range stocks {
		res[i] = model.Stock{
			Quantity: copyPtr(s.Quantity),
			Price:    copyPtr(s.Price),
			Obsolete: s.Obsolete,
			Company:  companyToModel(s.Company),
		}
	}

	return res
}

func companyToModel(c *catalogv1.Company) *model.Company {
	if c == nil {
		return nil
	}

	return &model.Company{
		Name:         c.Name,
		GroupName:    c.GroupName,
		ImageURL:     c.ImageURL,
		Street:       c.Street,
		Number:       c.Number,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		Country:      c.Country,
		State:        c.State,
		ZipCode:      c.ZipCode,
		Phone:        c.Phone,
		Mobile:       c.Mobile,
		Email:        c.Email,
		Website:      c.Website,
	}
}

func CarInfoToModel(ci *catalogv1.CarInfo) *model.VehicleInfo {
	if ci == nil {
		return nil
	}

	return &model.VehicleInfo{
		Plate:      ci.Placa,
		Make:       ci.Marca,
		Model:      ci.Modelo,
		Year:       ci.Ano,
		ModelYear:  ci.AnoModelo,
		Color:      ci.Cor,
		Fuel:       ci.Combustivel,
		City:       ci.Municipio,
		State:      ci.UF,
		FipeCode:   ci.CodigoFipe,
		FipeValue:  ci.ValorFipe,
		Confidence: ci.Confiabilidade,
	}
}

func CompaniesToModel(companies []catalogv1.Company) []model.ReferenceCompany {
	res := make([]model.ReferenceCompany, 0, len(companies))
	for _, c := range companies {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		res = append(res, model.ReferenceCompany{
			Name:      c.Name,
			GroupName: c.GroupName,
			City:      c.City,
			State:     c.State,
			ZipCode:   c.ZipCode,
			ImageURL:  c.ImageURL,
		})
	}

	return res
}

func BrandsToModel(brands []catalogv1.Brand) []model.ReferenceBrand {
	res := make([]model.ReferenceBrand, 0, len(brands))
	for _, b := range brands {
		if strings.TrimSpace(b.Name) == "" {
			continue
		}
		res = append(res, model.ReferenceBrand{Name: b.Name, LogoURL: b.LogoURL})
	}

	return res
}

func CitiesToModel(cities []string) []string {
	res := make([]string, 0, len(cities))
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			res = append(res, c)
		}
	}

	return res
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
