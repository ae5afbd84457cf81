package handler

import (
	"strconv"

	"storepanel/internal/usecase"
	"storepanel/pkg/errors"
	"storepanel/pkg/imageutil"
	"storepanel/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// Create mode requires every field: the form starts empty. Update mode
// relaxes the content fields because the form is pre-populated from the
// existing product, but must address the resources it overwrites by id.

type createProductRequest struct {
	Title  string `form:"title" validate:"required"`
	Price  string `form:"price" validate:"required"`
	Vendor string `form:"vendor" validate:"required"`
	Alt    string `form:"alt"`
}

type updateProductRequest struct {
	ID        int64  `form:"id" validate:"required"`
	VariantID int64  `form:"variant_id" validate:"required"`
	ImageID   int64  `form:"image_id"`
	Title     string `form:"title"`
	Price     string `form:"price"`
	Vendor    string `form:"vendor"`
	Alt       string `form:"alt"`
}

// ListProducts returns the catalog in fetch order. A failed remote fetch
// surfaces as an empty collection, not as an error page.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products := h.productUseCase.ListProducts(c.Request().Context())
	return response.Success(c, map[string]interface{}{
		"products": products,
	})
}

// Mutate is the single method-tagged mutation endpoint: POST creates, PUT
// updates, DELETE removes. Anything else is rejected explicitly rather than
// silently ignored.
func (h *ProductHandler) Mutate(c echo.Context) error {
	switch c.Request().Method {
	case echo.POST:
		return h.createProduct(c)
	case echo.PUT:
		return h.updateProduct(c)
	case echo.DELETE:
		return h.deleteProduct(c)
	default:
		return response.Error(c, errors.UnsupportedMethod(c.Request().Method))
	}
}

func (h *ProductHandler) createProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("invalid form data", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	attachment, err := h.encodedImage(c, true)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(
		c.Request().Context(),
		usecase.CreateProductInput{
			Title:           req.Title,
			Vendor:          req.Vendor,
			Price:           req.Price,
			Alt:             req.Alt,
			ImageAttachment: attachment,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Product Created Successfully!", product)
}

func (h *ProductHandler) updateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("invalid form data", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	attachment, err := h.encodedImage(c, false)
	if err != nil {
		return response.Error(c, err)
	}

	updated, err := h.productUseCase.UpdateProduct(
		c.Request().Context(),
		usecase.UpdateProductInput{
			ID:              req.ID,
			VariantID:       req.VariantID,
			ImageID:         req.ImageID,
			Title:           req.Title,
			Vendor:          req.Vendor,
			Price:           req.Price,
			Alt:             req.Alt,
			ImageAttachment: attachment,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Product Updated Successfully!", updated)
}

func (h *ProductHandler) deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.FormValue("product_id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("product_id must be a number", err))
	}

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Product Removed Successfully!", nil)
}

// encodedImage reads the single uploaded file to completion and returns its
// base64 payload. The read always finishes before the mutation starts; a
// half-read attachment can never reach the remote platform.
func (h *ProductHandler) encodedImage(c echo.Context, required bool) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if required {
			return "", errors.BadRequest("image is required", err)
		}
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.BadRequest("failed to open image", err)
	}
	defer file.Close()

	attachment, err := imageutil.EncodeReader(file)
	if err != nil {
		return "", errors.BadRequest(err.Error(), err)
	}
	return attachment, nil
}
