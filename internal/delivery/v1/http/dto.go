package http

import (
	"time"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
)

// REQUESTS

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type cartItemRequest struct {
	ID       string   `json:"id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Size     *string  `json:"size"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=1"`
	Image    *string  `json:"image"`
}

// checkoutRequest: пустой список позиций допустим, отсутствующий — нет.
type checkoutRequest struct {
	Items           []cartItemRequest `json:"items" validate:"required,dive"`
	Email           *string           `json:"email" validate:"omitempty,email"`
	ShippingAddress *string           `json:"shipping_address"`
}

// RESPONSES

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Gender      string   `json:"gender"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	NewArrival  bool     `json:"new_arrival"`
}

type RootResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Time   string `json:"time"`
}

type NewsletterResponse struct {
	OK      bool   `json:"ok"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactReceived struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactResponse struct {
	OK       bool            `json:"ok"`
	Received ContactReceived `json:"received"`
	Message  string          `json:"message"`
}

type CheckoutResponse struct {
	OK      bool    `json:"ok"`
	Total   float64 `json:"total"`
	Message string  `json:"message"`
}

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// MAPPERS

func (c *cartItemRequest) toDomain() domain.CartItem {
	quantity := 1
	if c.Quantity != nil {
		quantity = *c.Quantity
	}

	return domain.CartItem{
		ID:       c.ID,
		Name:     c.Name,
		Price:    *c.Price,
		Size:     c.Size,
		Quantity: quantity,
		Image:    c.Image,
	}
}

func (c *checkoutRequest) toUseCase() *usecase.CheckoutReq {
	items := make([]domain.CartItem, 0, len(c.Items))
	for i := range c.Items {
		items = append(items, c.Items[i].toDomain())
	}

	return usecase.NewCheckoutReq(items, c.Email, c.ShippingAddress)
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Gender:      p.Gender,
		Category:    p.Category,
		Sizes:       nonNil(p.Sizes),
		Images:      nonNil(p.Images),
		Description: p.Description,
		Tags:        nonNil(p.Tags),
		Featured:    p.Featured,
		NewArrival:  p.NewArrival,
	}
}

func toProductsResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}

	return result
}

func toNewsletterResponse(res *usecase.NewsletterRes) NewsletterResponse {
	return NewsletterResponse{OK: true, Email: res.Email, Message: res.Message}
}

func toContactResponse(res *usecase.ContactRes) ContactResponse {
	return ContactResponse{
		OK: true,
		Received: ContactReceived{
			Name:    res.Received.Name,
			Email:   res.Received.Email,
			Message: res.Received.Message,
		},
		Message: res.Message,
	}
}

func toCheckoutResponse(res *usecase.CheckoutRes) CheckoutResponse {
	return CheckoutResponse{OK: true, Total: res.Total, Message: res.Message}
}

func toDiagnosticsResponse(res *usecase.DiagnosticsRes) DiagnosticsResponse {
	return DiagnosticsResponse{
		Backend:          res.Backend,
		Database:         res.Database,
		DatabaseURL:      res.DatabaseURL,
		DatabaseName:     res.DatabaseName,
		ConnectionStatus: res.ConnectionStatus,
		Collections:      nonNil(res.Collections),
	}
}

func newRootResponse(now time.Time) RootResponse {
	return RootResponse{
		Name:   "Luxe Couture API",
		Status: "ok",
		Time:   now.UTC().Format("2006-01-02T15:04:05.000000"),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
