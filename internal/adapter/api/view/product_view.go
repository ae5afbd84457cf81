package view

import (
	"storepanel/internal/domain/entity"
)

// Row is one line of the product table, exactly as the page shows it.
type Row struct {
	Index       int    `json:"index"`
	ProductID   int64  `json:"product_id"`
	VariantID   int64  `json:"variant_id"`
	ImageID     int64  `json:"image_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageSrc    string `json:"image_src"`
	HasImage    bool   `json:"has_image"`
	Price       string `json:"price"`
	Vendor      string `json:"vendor"`
	// DataError flags a product the platform returned without its default
	// variant. The row still renders so the operator can see and delete it.
	DataError bool `json:"data_error,omitempty"`
}

const (
	descriptionLimit = 60
	placeholder      = "NA"
	currencyPrefix   = "$"
)

// BuildRows projects products into table rows in fetch order, with no
// client-side sorting or filtering.
func BuildRows(products []entity.Product) []Row {
	rows := make([]Row, 0, len(products))
	for i, product := range products {
		rows = append(rows, buildRow(i+1, product))
	}
	return rows
}

func buildRow(index int, product entity.Product) Row {
	row := Row{
		Index:       index,
		ProductID:   product.ID,
		Title:       product.Title,
		Vendor:      product.Vendor,
		Description: placeholder,
		ImageSrc:    "",
		HasImage:    false,
	}

	if product.Image != nil {
		row.ImageID = product.Image.ID
		row.HasImage = true
		row.ImageSrc = product.Image.Src
		row.Description = Truncate(product.Image.Alt, descriptionLimit)
	}

	if variant := product.DefaultVariant(); variant != nil {
		row.VariantID = variant.ID
		row.Price = currencyPrefix + variant.Price
	} else {
		row.Price = placeholder
		row.DataError = true
	}

	return row
}

// Truncate cuts text beyond limit runes and marks the cut with " ...".
// Text at or under the limit passes through unmodified.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + " ..."
}
