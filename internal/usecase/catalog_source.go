package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

// CatalogSource решает, откуда брать каталог: из внешнего хранилища или из встроенного набора.
// fallback разделяется между запросами по ссылке и никогда не изменяется.
type CatalogSource struct {
	repo          ProductRepository // nil, если хранилище не настроено
	imageResolver ImageResolver     // nil, если MinIO не настроен
	fallback      []domain.Product
	logger        logger.Logger
}

func NewCatalogSource(repo ProductRepository, imageResolver ImageResolver, fallback []domain.Product, logger logger.Logger) *CatalogSource {
	return &CatalogSource{
		repo:          repo,
		imageResolver: imageResolver,
		fallback:      fallback,
		logger:        logger,
	}
}

// Resolve возвращает каталог для одного запроса. Никогда не возвращает ошибку:
// ненастроенное, недоступное или пустое хранилище заменяется встроенным набором товаров.
func (c *CatalogSource) Resolve(ctx context.Context) []domain.Product {
	const op = "CatalogSource.Resolve"

	if c.repo == nil {
		return c.fallback
	}

	products, err := c.repo.ListProducts(ctx)
	if err != nil {
		c.logger.Warnf("using fallback catalog: %v", e.Wrap(op, fmt.Errorf("%w: %w", e.ErrDataSourceUnavailable, err)))
		return c.fallback
	}

	if len(products) == 0 {
		c.logger.Warnf("using fallback catalog: %v", e.Wrap(op, e.ErrDataSourceEmpty))
		return c.fallback
	}

	c.resolveImages(ctx, products)

	return products
}

// resolveImages заменяет ключи объектов на подписанные ссылки. Абсолютные URL не трогаются,
// при ошибке подписи остаётся исходное значение.
func (c *CatalogSource) resolveImages(ctx context.Context, products []domain.Product) {
	if c.imageResolver == nil {
		return
	}

	for i := range products {
		for j, ref := range products[i].Images {
			if isAbsoluteURL(ref) {
				continue
			}

			url, err := c.imageResolver.ResolveImage(ctx, ref)
			if err != nil {
				c.logger.Warnf("failed to resolve image %q of product %s: %v", ref, products[i].ID, err)
				continue
			}
			products[i].Images[j] = url
		}
	}
}

func isAbsoluteURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
