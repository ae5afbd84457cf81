package handler

import (
	"storepanel/internal/usecase"
)

var (
	productHandler *ProductHandler
	pageHandler    *PageHandler
)

func Setup(productUseCase *usecase.ProductUseCase) {
	productHandler = NewProductHandler(productUseCase)
	pageHandler = NewPageHandler(productUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetPageHandler() *PageHandler {
	return pageHandler
}
