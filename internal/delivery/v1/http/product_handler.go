package http

import (
	"net/http"

	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Фильтрует каталог по полу, категории и строке поиска, сортирует по цене
//	@Tags			products
//	@Produce		json
//	@Param			gender		query		string				false	"men | women | unisex"
//	@Param			category	query		string				false	"Категория"
//	@Param			q			query		string				false	"Подстрока названия или тега"
//	@Param			sort		query		string				false	"price_asc | price_desc"
//	@Success		200			{array}		ProductResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	products := p.productUsecase.ListProducts(r.Context(), usecase.NewProductQuery(
		query.Get("gender"),
		query.Get("category"),
		query.Get("q"),
		query.Get("sort"),
	))

	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// getProduct
//
//	@Summary		Товар по id
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Debugf("%d %s", http.StatusNotFound, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// featured
//
//	@Summary	Избранные товары
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/featured [get]
func (p *ProductHandler) featured(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toProductsResponse(p.productUsecase.Featured(r.Context())))
}

// newArrivals
//
//	@Summary	Новинки
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/new-arrivals [get]
func (p *ProductHandler) newArrivals(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toProductsResponse(p.productUsecase.NewArrivals(r.Context())))
}
