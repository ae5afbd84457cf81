package repository

import (
	"context"

	"storepanel/internal/domain/entity"
)

// ProductPayload carries the core fields of a product create or update call.
// Variant pricing and images are separate resources on the platform and are
// written through SaveVariant / SaveImage.
type ProductPayload struct {
	Title    string `json:"title,omitempty"`
	BodyHTML string `json:"body_html,omitempty"`
	Vendor   string `json:"vendor,omitempty"`
}

// CatalogClient is the authenticated capability for the remote commerce
// platform's product, variant and image resources. Implementations own the
// transport and the session; callers only see resource-style verbs.
//
// SaveVariant and SaveImage follow the platform SDK's imperative save shape:
// update=false creates the resource under its parent product, update=true
// overwrites the resource addressed by its own id.
type CatalogClient interface {
	GetProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, payload ProductPayload) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, payload ProductPayload) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SaveVariant(ctx context.Context, variant *entity.Variant, update bool) (*entity.Variant, error)
	SaveImage(ctx context.Context, image *entity.Image, update bool) (*entity.Image, error)
}
