package usecase

import (
	"time"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
)

// CATALOG

// Режимы сортировки каталога. Любое другое значение оставляет порядок источника.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ProductQuery задаёт параметры выборки каталога. Пустое поле означает отсутствие ограничения.
type ProductQuery struct {
	Gender   string
	Category string
	Search   string
	Sort     string
}

// STOREFRONT

type NewsletterRes struct {
	Email   string
	Message string
}

type ContactRes struct {
	Received domain.ContactMessage
	Message  string
}

// CheckoutReq описывает запрос на подсчёт суммы корзины.
type CheckoutReq struct {
	Items           []domain.CartItem
	Email           *string
	ShippingAddress *string
}

type CheckoutRes struct {
	Total   float64
	Message string
}

// Типы событий витрины
const (
	EventNewsletterSubscribed = "newsletter.subscribed"
	EventContactReceived      = "contact.received"
	EventCheckoutInitialized  = "checkout.initialized"
)

// StorefrontEvent описывает событие витрины для внешних потребителей.
// Payload должен состоять из JSON-совместимых значений (string, float64, bool, []any, map[string]any).
type StorefrontEvent struct {
	ID         string
	Type       string
	OccurredAt time.Time
	Payload    map[string]any
}

// DIAGNOSTICS

// StoreDiagnostics содержит то, что удалось узнать о хранилище каталога.
type StoreDiagnostics struct {
	Name        string
	Collections []string
}

// DiagnosticsRes описывает отчёт для эндпоинта /test.
type DiagnosticsRes struct {
	Backend          string
	Database         string
	DatabaseURL      string
	DatabaseName     string
	ConnectionStatus string
	Collections      []string
}

// MAPPERS

func NewProductQuery(gender, category, search, sort string) *ProductQuery {
	return &ProductQuery{
		Gender:   gender,
		Category: category,
		Search:   search,
		Sort:     sort,
	}
}

func NewCheckoutReq(items []domain.CartItem, email, shippingAddress *string) *CheckoutReq {
	return &CheckoutReq{
		Items:           items,
		Email:           email,
		ShippingAddress: shippingAddress,
	}
}

func NewStorefrontEvent(id, eventType string, occurredAt time.Time, payload map[string]any) *StorefrontEvent {
	return &StorefrontEvent{
		ID:         id,
		Type:       eventType,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}

func NewStoreDiagnostics(name string, collections []string) *StoreDiagnostics {
	return &StoreDiagnostics{
		Name:        name,
		Collections: collections,
	}
}
