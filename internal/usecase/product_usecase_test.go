package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepanel/internal/domain/entity"
	"storepanel/internal/domain/repository"
	"storepanel/pkg/errors"
)

// recordedCall captures one remote write in arrival order.
type recordedCall struct {
	name    string
	payload repository.ProductPayload
	variant *entity.Variant
	image   *entity.Image
	update  bool
	id      int64
}

type fakeCatalog struct {
	calls []recordedCall

	products []entity.Product
	created  *entity.Product
	failOn   string
	listErr  error
}

func (f *fakeCatalog) failErr(name string) error {
	if f.failOn == name {
		return fmt.Errorf("remote call %s rejected", name)
	}
	return nil
}

func (f *fakeCatalog) GetProducts(ctx context.Context) ([]entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeCatalog) CreateProduct(ctx context.Context, payload repository.ProductPayload) (*entity.Product, error) {
	f.calls = append(f.calls, recordedCall{name: "create-product", payload: payload})
	if err := f.failErr("create-product"); err != nil {
		return nil, err
	}
	return f.created, nil
}

func (f *fakeCatalog) UpdateProduct(ctx context.Context, id int64, payload repository.ProductPayload) (*entity.Product, error) {
	f.calls = append(f.calls, recordedCall{name: "update-product", id: id, payload: payload})
	if err := f.failErr("update-product"); err != nil {
		return nil, err
	}
	return &entity.Product{ID: id, Title: payload.Title, Vendor: payload.Vendor}, nil
}

func (f *fakeCatalog) DeleteProduct(ctx context.Context, id int64) error {
	f.calls = append(f.calls, recordedCall{name: "delete-product", id: id})
	return f.failErr("delete-product")
}

func (f *fakeCatalog) SaveVariant(ctx context.Context, variant *entity.Variant, update bool) (*entity.Variant, error) {
	copied := *variant
	f.calls = append(f.calls, recordedCall{name: "save-variant", variant: &copied, update: update})
	if err := f.failErr("save-variant"); err != nil {
		return nil, err
	}
	return &copied, nil
}

func (f *fakeCatalog) SaveImage(ctx context.Context, image *entity.Image, update bool) (*entity.Image, error) {
	copied := *image
	f.calls = append(f.calls, recordedCall{name: "save-image", image: &copied, update: update})
	if err := f.failErr("save-image"); err != nil {
		return nil, err
	}
	return &copied, nil
}

func (f *fakeCatalog) callNames() []string {
	names := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		names = append(names, call.name)
	}
	return names
}

func createdMug() *entity.Product {
	return &entity.Product{
		ID:     1001,
		Title:  "Mug",
		Vendor: "Acme",
		Variants: []entity.Variant{
			{ID: 2002, ProductID: 1001, Price: "0.00"},
		},
	}
}

func TestCreateProductIssuesOrderedCalls(t *testing.T) {
	fake := &fakeCatalog{created: createdMug()}
	uc := NewProductUseCase(fake)

	product, err := uc.CreateProduct(context.Background(), CreateProductInput{
		Title:           "Mug",
		Price:           "9.99",
		Vendor:          "Acme",
		Alt:             "A mug",
		ImageAttachment: "aW1hZ2U=",
	})

	require.NoError(t, err)
	require.Equal(t, []string{"create-product", "save-variant", "save-image"}, fake.callNames())

	create := fake.calls[0]
	assert.Equal(t, "Mug", create.payload.Title)
	assert.Equal(t, "Acme", create.payload.Vendor)
	assert.Equal(t, "A mug", create.payload.BodyHTML)

	variant := fake.calls[1]
	assert.True(t, variant.update)
	assert.Equal(t, int64(2002), variant.variant.ID)
	assert.Equal(t, "9.99", variant.variant.Price)
	require.Len(t, variant.variant.Metafields, 1, "first creation attaches the default tag")
	assert.Equal(t, "global", variant.variant.Metafields[0].Namespace)

	image := fake.calls[2]
	assert.False(t, image.update)
	assert.Equal(t, int64(1001), image.image.ProductID)
	assert.Equal(t, 1, image.image.Position)
	assert.Equal(t, 40, image.image.Width)
	assert.Equal(t, 40, image.image.Height)
	assert.Equal(t, "A mug", image.image.Alt)
	assert.Equal(t, "Mug", image.image.Filename)
	assert.Equal(t, "aW1hZ2U=", image.image.Attachment)

	// The returned product is the first-step snapshot, before the price and
	// image were written.
	assert.Equal(t, int64(1001), product.ID)
	assert.Equal(t, "0.00", product.Variants[0].Price)
}

func TestCreateProductStopsWhenCreateFails(t *testing.T) {
	fake := &fakeCatalog{created: createdMug(), failOn: "create-product"}
	uc := NewProductUseCase(fake)

	_, err := uc.CreateProduct(context.Background(), CreateProductInput{
		Title:           "Mug",
		Price:           "9.99",
		Vendor:          "Acme",
		ImageAttachment: "aW1hZ2U=",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "REMOTE_CREATE_FAILED"))
	assert.Equal(t, []string{"create-product"}, fake.callNames(), "no further calls after a failed create")
}

func TestCreateProductVariantFailureLeavesProductInPlace(t *testing.T) {
	fake := &fakeCatalog{created: createdMug(), failOn: "save-variant"}
	uc := NewProductUseCase(fake)

	_, err := uc.CreateProduct(context.Background(), CreateProductInput{
		Title:           "Mug",
		Price:           "9.99",
		Vendor:          "Acme",
		ImageAttachment: "aW1hZ2U=",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VARIANT_UPDATE_FAILED"))
	// The product was created and is not deleted; the chain just stops.
	assert.Equal(t, []string{"create-product", "save-variant"}, fake.callNames())
}

func TestCreateProductWithoutDefaultVariant(t *testing.T) {
	fake := &fakeCatalog{created: &entity.Product{ID: 1001, Title: "Mug"}}
	uc := NewProductUseCase(fake)

	_, err := uc.CreateProduct(context.Background(), CreateProductInput{
		Title:           "Mug",
		Price:           "9.99",
		Vendor:          "Acme",
		ImageAttachment: "aW1hZ2U=",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VARIANT_UPDATE_FAILED"))
	assert.Equal(t, []string{"create-product"}, fake.callNames())
}

func TestCreateProductValidation(t *testing.T) {
	uc := NewProductUseCase(&fakeCatalog{})

	cases := []struct {
		name  string
		input CreateProductInput
	}{
		{"missing title", CreateProductInput{Vendor: "Acme", Price: "1.00", ImageAttachment: "eA=="}},
		{"missing vendor", CreateProductInput{Title: "Mug", Price: "1.00", ImageAttachment: "eA=="}},
		{"missing image", CreateProductInput{Title: "Mug", Vendor: "Acme", Price: "1.00"}},
		{"missing price", CreateProductInput{Title: "Mug", Vendor: "Acme", ImageAttachment: "eA=="}},
		{"malformed price", CreateProductInput{Title: "Mug", Vendor: "Acme", Price: "cheap", ImageAttachment: "eA=="}},
		{"negative price", CreateProductInput{Title: "Mug", Vendor: "Acme", Price: "-1", ImageAttachment: "eA=="}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, "BAD_REQUEST"))
		})
	}
}

func TestUpdateProductIssuesOrderedCalls(t *testing.T) {
	fake := &fakeCatalog{}
	uc := NewProductUseCase(fake)

	input := UpdateProductInput{
		ID:              42,
		VariantID:       7,
		ImageID:         99,
		Title:           "Mug",
		Vendor:          "Acme",
		Price:           "12.00",
		Alt:             "A mug",
		ImageAttachment: "aW1hZ2U=",
	}

	updated, err := uc.UpdateProduct(context.Background(), input)

	require.NoError(t, err)
	require.Equal(t, []string{"update-product", "save-variant", "save-image"}, fake.callNames())

	core := fake.calls[0]
	assert.Equal(t, int64(42), core.id)
	assert.Equal(t, "Mug", core.payload.Title)
	assert.Equal(t, "Acme", core.payload.Vendor)

	variant := fake.calls[1]
	assert.True(t, variant.update)
	assert.Equal(t, int64(7), variant.variant.ID)
	assert.Equal(t, "12.00", variant.variant.Price)
	assert.Empty(t, variant.variant.Metafields, "updates never re-tag the variant")

	image := fake.calls[2]
	assert.True(t, image.update)
	assert.Equal(t, int64(99), image.image.ID)
	assert.Empty(t, image.image.Metafields, "an existing image is overwritten without a tag")

	// The caller's buffer comes back verbatim as the new state.
	assert.Equal(t, input, *updated)
}

func TestUpdateProductWithoutPriorImageCreatesTaggedImage(t *testing.T) {
	fake := &fakeCatalog{}
	uc := NewProductUseCase(fake)

	_, err := uc.UpdateProduct(context.Background(), UpdateProductInput{
		ID:              42,
		VariantID:       7,
		Title:           "Mug",
		Vendor:          "Acme",
		Price:           "12.00",
		ImageAttachment: "aW1hZ2U=",
	})

	require.NoError(t, err)
	image := fake.calls[2]
	assert.False(t, image.update)
	require.Len(t, image.image.Metafields, 1, "a brand new image gets the default tag")
	assert.Equal(t, int64(42), image.image.ProductID)
	assert.Equal(t, 1, image.image.Position)
}

func TestUpdateProductStopsOnCoreFailure(t *testing.T) {
	fake := &fakeCatalog{failOn: "update-product"}
	uc := NewProductUseCase(fake)

	_, err := uc.UpdateProduct(context.Background(), UpdateProductInput{
		ID:        42,
		VariantID: 7,
		Price:     "12.00",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "REMOTE_UPDATE_FAILED"))
	assert.Equal(t, []string{"update-product"}, fake.callNames())
}

func TestDeleteProductSingleCall(t *testing.T) {
	fake := &fakeCatalog{}
	uc := NewProductUseCase(fake)

	require.NoError(t, uc.DeleteProduct(context.Background(), 42))
	require.Equal(t, []string{"delete-product"}, fake.callNames())
	assert.Equal(t, int64(42), fake.calls[0].id)
}

func TestDeleteProductFailure(t *testing.T) {
	fake := &fakeCatalog{failOn: "delete-product"}
	uc := NewProductUseCase(fake)

	err := uc.DeleteProduct(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "REMOTE_DELETE_FAILED"))
}

func TestListProductsSwallowsFetchFailure(t *testing.T) {
	fake := &fakeCatalog{listErr: fmt.Errorf("auth expired")}
	uc := NewProductUseCase(fake)

	products := uc.ListProducts(context.Background())
	assert.Empty(t, products)
}
