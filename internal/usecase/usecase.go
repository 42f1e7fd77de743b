package usecase

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context, query *ProductQuery) []domain.Product
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Featured(ctx context.Context) []domain.Product
	NewArrivals(ctx context.Context) []domain.Product
}

type StorefrontUC interface {
	Subscribe(ctx context.Context, req *domain.NewsletterSignup) *NewsletterRes
	Contact(ctx context.Context, req *domain.ContactMessage) *ContactRes
	Checkout(ctx context.Context, req *CheckoutReq) *CheckoutRes
}

type DiagnosticsUC interface {
	Diagnose(ctx context.Context) *DiagnosticsRes
}
