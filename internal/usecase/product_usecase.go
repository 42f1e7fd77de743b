package usecase

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

// CatalogSourceResolver отдаёт каталог для одного запроса.
type CatalogSourceResolver interface {
	Resolve(ctx context.Context) []domain.Product
}

// ProductUseCase реализует чтение каталога: выборку, поиск по id и витринные подборки.
type ProductUseCase struct {
	source CatalogSourceResolver
	logger logger.Logger
}

func NewProductUC(source CatalogSourceResolver, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		source: source,
		logger: logger,
	}
}

// ListProducts возвращает отфильтрованный и отсортированный каталог.
func (p *ProductUseCase) ListProducts(ctx context.Context, query *ProductQuery) []domain.Product {
	return QueryProducts(p.source.Resolve(ctx), query)
}

// GetProduct возвращает товар по id или e.ErrProductNotFound.
func (p *ProductUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := FindProductByID(p.source.Resolve(ctx), id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (p *ProductUseCase) Featured(ctx context.Context) []domain.Product {
	return FeaturedProducts(p.source.Resolve(ctx))
}

func (p *ProductUseCase) NewArrivals(ctx context.Context) []domain.Product {
	return NewArrivalProducts(p.source.Resolve(ctx))
}
