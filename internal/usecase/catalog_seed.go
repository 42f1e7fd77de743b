package usecase

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

// CatalogSeeder заливает встроенный каталог в хранилище, если там ещё нет ни одного товара.
type CatalogSeeder struct {
	repo   ProductRepository
	writer ProductWriter
	logger logger.Logger
}

func NewCatalogSeeder(repo ProductRepository, writer ProductWriter, logger logger.Logger) *CatalogSeeder {
	return &CatalogSeeder{
		repo:   repo,
		writer: writer,
		logger: logger,
	}
}

// Seed возвращает количество записанных товаров. Непустое хранилище не трогается.
func (s *CatalogSeeder) Seed(ctx context.Context, products []domain.Product) (int, error) {
	const op = "CatalogSeeder.Seed"

	existing, err := s.repo.ListProducts(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}
	if len(existing) > 0 {
		s.logger.Debugf("%s: store already has %d products", op, len(existing))
		return 0, nil
	}

	for i := range products {
		if err := s.writer.Upsert(ctx, &products[i]); err != nil {
			return i, e.Wrap(op, err)
		}
	}

	s.logger.Infof("seeded %d sample products", len(products))
	return len(products), nil
}
