package usecase

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
)

// ProductRepository — внешнее хранилище каталога (MongoDB или PostgreSQL).
// Записи, которые не удалось привести к domain.Product, репозиторий пропускает и логирует.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	Diagnose(ctx context.Context) (*StoreDiagnostics, error)
}

// ProductWriter записывает товары в хранилище каталога. Используется только для начального заполнения.
type ProductWriter interface {
	Upsert(ctx context.Context, product *domain.Product) error
}

// SubscriberRepository хранит email подписчиков рассылки.
type SubscriberRepository interface {
	// Add возвращает false, если email уже был подписан.
	Add(ctx context.Context, email string) (bool, error)
}
