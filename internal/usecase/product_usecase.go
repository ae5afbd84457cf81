package usecase

import (
	"context"

	"github.com/google/uuid"

	"storepanel/internal/domain/entity"
	"storepanel/internal/domain/repository"
	"storepanel/pkg/errors"
	"storepanel/pkg/logger"
)

// The remote platform models product core fields, variant pricing and image
// attachment as three independent resources with independent write endpoints
// and no transaction across them. ProductUseCase sequences the dependent
// calls so that one logical "save product" maps onto an ordered chain:
// core fields first (every later call needs a valid product id), then the
// default variant's price, then the image.
//
// There is no rollback: a failure in a later step leaves the earlier writes
// in place and the remote product partially populated. That is a documented
// property of the platform's model, not something this layer papers over.
// Each step carries a compensation hook so a compensating-delete strategy
// can be added without restructuring the chain; today every hook is a no-op.
type ProductUseCase struct {
	catalog repository.CatalogClient
}

func NewProductUseCase(catalog repository.CatalogClient) *ProductUseCase {
	return &ProductUseCase{
		catalog: catalog,
	}
}

// The platform's sample metafield payload, attached exactly once: to the
// variant on first creation and to an image that is created rather than
// overwritten. Updates never re-tag.
var defaultTag = entity.Metafield{
	Namespace: "global",
	Key:       "new",
	Value:     "newvalue",
	Type:      "single_line_text_field",
}

// mutationStep is one remote write in a mutation chain. Steps run strictly
// in order; the first failure stops the chain and is reported under the
// step's own error code.
type mutationStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// runChain executes the steps in order. On failure it walks the completed
// steps' compensation hooks in reverse, logs the aborted chain, and returns
// the failing step's error untouched.
func (uc *ProductUseCase) runChain(ctx context.Context, mutationID string, steps []mutationStep) error {
	for i, step := range steps {
		if err := step.run(ctx); err != nil {
			logger.Step(mutationID, step.name, err)
			for j := i - 1; j >= 0; j-- {
				if steps[j].compensate == nil {
					continue
				}
				if cerr := steps[j].compensate(ctx); cerr != nil {
					logger.Warn("mutation=%s compensation for step %s failed: %v", mutationID, steps[j].name, cerr)
				}
			}
			return err
		}
		logger.Step(mutationID, step.name, nil)
	}
	return nil
}

// CreateProduct drives the three-call create chain and returns the product
// as the platform created it in the first call. The returned snapshot does
// not reflect the price or image written by the later steps; callers that
// need the final state must re-fetch the list.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	mutationID := uuid.NewString()
	var created *entity.Product

	steps := []mutationStep{
		{
			name: "product-create",
			run: func(ctx context.Context) error {
				payload := repository.ProductPayload{
					Title:    input.Title,
					Vendor:   input.Vendor,
					BodyHTML: input.Alt,
				}
				product, err := uc.catalog.CreateProduct(ctx, payload)
				if err != nil {
					return errors.RemoteCreate("failed to create product", err)
				}
				created = product
				return nil
			},
		},
		{
			name: "variant-price-update",
			run: func(ctx context.Context) error {
				variant := created.DefaultVariant()
				if variant == nil {
					return errors.VariantUpdate("created product has no default variant", nil)
				}
				_, err := uc.catalog.SaveVariant(ctx, &entity.Variant{
					ID:         variant.ID,
					Price:      input.Price,
					Metafields: []entity.Metafield{defaultTag},
				}, true)
				if err != nil {
					return errors.VariantUpdate("failed to set variant price", err)
				}
				return nil
			},
		},
		{
			name: "image-attach",
			run: func(ctx context.Context) error {
				_, err := uc.catalog.SaveImage(ctx, &entity.Image{
					ProductID:  created.ID,
					Position:   1,
					Width:      40,
					Height:     40,
					Alt:        input.Alt,
					Filename:   input.Title,
					Attachment: input.ImageAttachment,
				}, false)
				if err != nil {
					return errors.ImageAttach("failed to attach product image", err)
				}
				return nil
			},
		},
	}

	if err := uc.runChain(ctx, mutationID, steps); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateProduct drives the three-call update chain. It returns the caller's
// input echoed back as the new state; no authoritative re-fetch happens
// after the chain completes.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, input UpdateProductInput) (*UpdateProductInput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	mutationID := uuid.NewString()

	steps := []mutationStep{
		{
			name: "product-update",
			run: func(ctx context.Context) error {
				payload := repository.ProductPayload{
					Title:  input.Title,
					Vendor: input.Vendor,
				}
				_, err := uc.catalog.UpdateProduct(ctx, input.ID, payload)
				if err != nil {
					return errors.RemoteUpdate("failed to update product", err)
				}
				return nil
			},
		},
		{
			name: "variant-price-update",
			run: func(ctx context.Context) error {
				_, err := uc.catalog.SaveVariant(ctx, &entity.Variant{
					ID:    input.VariantID,
					Price: input.Price,
				}, true)
				if err != nil {
					return errors.VariantUpdate("failed to update variant price", err)
				}
				return nil
			},
		},
		{
			name: "image-update",
			run: func(ctx context.Context) error {
				image := &entity.Image{
					ProductID:  input.ID,
					Alt:        input.Alt,
					Filename:   input.Title,
					Attachment: input.ImageAttachment,
				}

				// An existing image is overwritten in place. Only a product
				// that never had an image gets a fresh, tagged one, mirroring
				// the tagging done at first creation.
				update := input.ImageID != 0
				if update {
					image.ID = input.ImageID
				} else {
					image.Position = 1
					image.Width = 40
					image.Height = 40
					image.Metafields = []entity.Metafield{defaultTag}
				}

				if _, err := uc.catalog.SaveImage(ctx, image, update); err != nil {
					return errors.ImageAttach("failed to update product image", err)
				}
				return nil
			},
		},
	}

	if err := uc.runChain(ctx, mutationID, steps); err != nil {
		return nil, err
	}

	return &input, nil
}

// DeleteProduct removes the product with a single remote call; variants and
// images go down with their parent on the platform side.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if id == 0 {
		return errors.BadRequest("product_id is required", nil)
	}

	mutationID := uuid.NewString()

	if err := uc.catalog.DeleteProduct(ctx, id); err != nil {
		wrapped := errors.RemoteDelete("failed to delete product", err)
		logger.Step(mutationID, "product-delete", wrapped)
		return wrapped
	}
	logger.Step(mutationID, "product-delete", nil)
	return nil
}

// ListProducts returns the catalog in the platform's fetch order. A failed
// fetch is logged and surfaced as an empty list; the panel renders an empty
// table rather than an error page.
func (uc *ProductUseCase) ListProducts(ctx context.Context) []entity.Product {
	products, err := uc.catalog.GetProducts(ctx)
	if err != nil {
		logger.Error("failed to fetch products: %v", err)
		return nil
	}
	return products
}
