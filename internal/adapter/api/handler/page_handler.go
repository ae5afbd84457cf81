package handler

import (
	"net/http"

	"storepanel/internal/adapter/api/view"
	"storepanel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the operator-facing product table. All rendering
// decisions live in the view package; this handler only glues the fetched
// collection to the template.
type PageHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewPageHandler(productUseCase *usecase.ProductUseCase) *PageHandler {
	return &PageHandler{
		productUseCase: productUseCase,
	}
}

func (h *PageHandler) ProductsPage(c echo.Context) error {
	products := h.productUseCase.ListProducts(c.Request().Context())
	return c.Render(http.StatusOK, "products.html", map[string]interface{}{
		"Rows": view.BuildRows(products),
	})
}
