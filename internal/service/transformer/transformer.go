package transformer

import (
	"strconv"
	"strings"

	"github.com/you-humble/partexplorer/internal/model"
)

const (
	TitlePlaceholder      = "Produto sem descrição"
	PartNumberPlaceholder = "N/A"
	ImagePlaceholder      = "/placeholder-product.jpg"

	syntheticIDPrefix = "product_"
)

// Transform maps one catalog record onto a Product. query is the active
// search text and decides which SKU is shown; index is the record's position
// in its page and only matters when the record carries no id at all.
func Transform(item model.RawResultItem, query string, index int) model.Product {
	partNumber, brand := selectSKU(item.Names, strings.TrimSpace(query))

	return model.Product{
		ID:         productID(item, index),
		Title:      selectTitle(item.Names),
		PartNumber: partNumber,
		Image:      selectImage(item.Images),
		Brand:      brand,
	}
}

func TransformAll(items []model.RawResultItem, query string) []model.Product {
	products := make([]model.Product, 0, len(items))
	for i, item := range items {
		products = append(products, Transform(item, query, i))
	}
	return products
}

func productID(item model.RawResultItem, index int) string {
	if item.ID != "" {
		return item.ID
	}
	if item.PartGroup != nil && item.PartGroup.ID != "" {
		return item.PartGroup.ID
	}
	return syntheticIDPrefix + strconv.Itoa(index)
}

// selectTitle picks the longest description. The first one wins a tie.
func selectTitle(names []model.PartName) string {
	title := ""
	for _, n := range names {
		if n.Type != model.NameTypeDesc {
			continue
		}
		if len([]rune(n.Name)) > len([]rune(title)) {
			title = n.Name
		}
	}

	if title == "" {
		return TitlePlaceholder
	}
	return title
}

// selectSKU prefers the SKU the visitor typed, then a SKU whose brand matches
// the query, then the first SKU.
func selectSKU(names []model.PartName, query string) (string, string) {
	var first *model.PartName
	var brandMatch *model.PartName

	lowered := strings.ToLower(query)
	for i := range names {
		n := &names[i]
		if n.Type != model.NameTypeSKU {
			continue
		}

		if query != "" && strings.EqualFold(n.Name, query) {
			return n.Name, n.BrandName()
		}

		if first == nil {
			first = n
		}
		if brandMatch == nil && query != "" && n.BrandName() != "" &&
			strings.Contains(strings.ToLower(n.BrandName()), lowered) {
			brandMatch = n
		}
	}

	switch {
	case brandMatch != nil:
		return brandMatch.Name, brandMatch.BrandName()
	case first != nil:
		return first.Name, first.BrandName()
	default:
		return PartNumberPlaceholder, ""
	}
}

func selectImage(images []model.Image) string {
	if len(images) == 0 || strings.TrimSpace(images[0].URL) == "" {
		return ImagePlaceholder
	}
	return images[0].URL
}
