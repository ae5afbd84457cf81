package usecase

import (
	"github.com/shopspring/decimal"

	"storepanel/pkg/errors"
)

// One tagged input per operation. Create inputs never carry variant or image
// ids because those resources do not exist yet; update inputs must address
// the existing resources explicitly.

type CreateProductInput struct {
	Title  string
	Vendor string
	Price  string
	Alt    string
	// ImageAttachment is the base64 payload produced by the image encoder.
	ImageAttachment string
}

type UpdateProductInput struct {
	ID        int64
	VariantID int64
	// ImageID is zero when the product had no image before this edit; in that
	// case the image is created fresh instead of overwritten.
	ImageID         int64
	Title           string
	Vendor          string
	Price           string
	Alt             string
	ImageAttachment string
}

func (in *CreateProductInput) validate() error {
	if in.Title == "" {
		return errors.BadRequest("title is required", nil)
	}
	if in.Vendor == "" {
		return errors.BadRequest("vendor is required", nil)
	}
	if in.ImageAttachment == "" {
		return errors.BadRequest("image is required", nil)
	}
	normalized, err := normalizePrice(in.Price)
	if err != nil {
		return err
	}
	in.Price = normalized
	return nil
}

func (in *UpdateProductInput) validate() error {
	if in.ID == 0 {
		return errors.BadRequest("id is required", nil)
	}
	if in.VariantID == 0 {
		return errors.BadRequest("variant_id is required", nil)
	}
	if in.Price != "" {
		normalized, err := normalizePrice(in.Price)
		if err != nil {
			return err
		}
		in.Price = normalized
	}
	return nil
}

// normalizePrice validates the decimal-as-string form the wire uses and pins
// it to two fractional digits.
func normalizePrice(price string) (string, error) {
	if price == "" {
		return "", errors.BadRequest("price is required", nil)
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return "", errors.BadRequest("price must be a decimal number", err)
	}
	if d.IsNegative() {
		return "", errors.BadRequest("price must not be negative", nil)
	}
	return d.StringFixed(2), nil
}
