package usecase

import (
	"cmp"
	"slices"
	"strings"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
)

// QueryProducts применяет фильтры в фиксированном порядке (пол, категория, поиск), затем сортировку.
// Входной срез не изменяется: результат всегда новый срез.
func QueryProducts(products []domain.Product, q *ProductQuery) []domain.Product {
	if q == nil {
		q = &ProductQuery{}
	}

	// Пол сравнивается буквально: запрос "men" не возвращает unisex-товары.
	items := FilterProducts(products, func(p *domain.Product) bool {
		return q.Gender == "" || strings.EqualFold(p.Gender, q.Gender)
	})

	if q.Category != "" {
		items = FilterProducts(items, func(p *domain.Product) bool {
			return strings.EqualFold(p.Category, q.Category)
		})
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		items = FilterProducts(items, func(p *domain.Product) bool {
			return matchesSearch(p, needle)
		})
	}

	sortProducts(items, q.Sort)

	return items
}

// FilterProducts возвращает новый срез из товаров, для которых keep вернул true, сохраняя порядок.
func FilterProducts(products []domain.Product, keep func(p *domain.Product) bool) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for i := range products {
		if keep(&products[i]) {
			result = append(result, products[i])
		}
	}

	return result
}

// FindProductByID ищет первый товар с точным (регистрозависимым) совпадением id.
func FindProductByID(products []domain.Product, id string) (*domain.Product, error) {
	for i := range products {
		if products[i].ID == id {
			product := products[i]
			return &product, nil
		}
	}

	return nil, e.ErrProductNotFound
}

// FeaturedProducts оставляет товары с флагом featured.
func FeaturedProducts(products []domain.Product) []domain.Product {
	return FilterProducts(products, func(p *domain.Product) bool { return p.Featured })
}

// NewArrivalProducts оставляет товары с флагом new_arrival.
func NewArrivalProducts(products []domain.Product) []domain.Product {
	return FilterProducts(products, func(p *domain.Product) bool { return p.NewArrival })
}

func matchesSearch(p *domain.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}

	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}

	return false
}

// sortProducts сортирует срез на месте. Сортировка стабильна в обе стороны.
func sortProducts(items []domain.Product, mode string) {
	switch mode {
	case SortPriceAsc:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(items, func(a, b domain.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	}
}
