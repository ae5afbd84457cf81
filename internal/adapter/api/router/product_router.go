package router

import (
	"storepanel/internal/adapter/api/handler"
	"storepanel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// mutationMethods covers every method the mutation endpoint answers. PATCH
// is routed on purpose so an unsupported method gets an explicit typed
// rejection instead of a bare 405.
var mutationMethods = []string{echo.POST, echo.PUT, echo.DELETE, echo.PATCH}

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()
	pageHandler := handler.GetPageHandler()

	e.GET("/", pageHandler.ProductsPage)

	e.GET("/v1/products", productHandler.ListProducts)
	e.Match(mutationMethods, "/v1/products", productHandler.Mutate, authMiddleware.Authenticate)
}
