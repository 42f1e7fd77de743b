package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	subscribedMessage = "Subscribed"
	contactMessage    = "We will be in touch"
	checkoutMessage   = "Checkout initialized"
)

// StorefrontUseCase обрабатывает подписку, обратную связь и подсчёт корзины.
// Хранилище подписчиков и шина событий необязательны: их ошибки логируются и не влияют на ответ.
type StorefrontUseCase struct {
	subscribers SubscriberRepository
	publisher   EventPublisher
	logger      logger.Logger
	now         func() time.Time
}

func NewStorefrontUC(subscribers SubscriberRepository, publisher EventPublisher, logger logger.Logger) *StorefrontUseCase {
	return &StorefrontUseCase{
		subscribers: subscribers,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// Subscribe подписывает email на рассылку.
func (s *StorefrontUseCase) Subscribe(ctx context.Context, req *domain.NewsletterSignup) *NewsletterRes {
	const op = "StorefrontUseCase.Subscribe"

	if s.subscribers != nil {
		added, err := s.subscribers.Add(ctx, req.Email)
		switch {
		case err != nil:
			s.logger.Warnf("failed to store newsletter subscriber: %v", e.Wrap(op, err))
		case !added:
			s.logger.Debugf("%s: email is already subscribed", op)
		}
	}

	s.publish(ctx, EventNewsletterSubscribed, map[string]any{
		"email": req.Email,
	})

	return &NewsletterRes{
		Email:   req.Email,
		Message: subscribedMessage,
	}
}

// Contact принимает сообщение из формы обратной связи.
func (s *StorefrontUseCase) Contact(ctx context.Context, req *domain.ContactMessage) *ContactRes {
	s.publish(ctx, EventContactReceived, map[string]any{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	})

	return &ContactRes{
		Received: *req,
		Message:  contactMessage,
	}
}

// Checkout считает сумму корзины: Σ price × quantity, приведённую к копейкам.
func (s *StorefrontUseCase) Checkout(ctx context.Context, req *CheckoutReq) *CheckoutRes {
	total := CartTotal(req.Items)

	payload := map[string]any{
		"total": total,
		"items": cartItemsPayload(req.Items),
	}
	if req.Email != nil {
		payload["email"] = *req.Email
	}
	if req.ShippingAddress != nil {
		payload["shipping_address"] = *req.ShippingAddress
	}
	s.publish(ctx, EventCheckoutInitialized, payload)

	return &CheckoutRes{
		Total:   total,
		Message: checkoutMessage,
	}
}

// cartPriceExponent задаёт точность, с которой цена переводится из float64 в decimal.
// Берётся точное двоичное значение цены, а не кратчайшая десятичная запись.
const cartPriceExponent = -30

// CartTotal суммирует позиции в десятичной арифметике и округляет сумму до копеек по обычным правилам.
// Цена 49.995 в float64 чуть меньше половины копейки, поэтому корзина [100×2, 49.995×1] стоит 249.99,
// а 2.999 округляется до 3.
func CartTotal(items []domain.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloatWithExponent(item.Price, cartPriceExponent)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(2).InexactFloat64()
}

func (s *StorefrontUseCase) publish(ctx context.Context, eventType string, payload map[string]any) {
	const op = "StorefrontUseCase.publish"

	if s.publisher == nil {
		return
	}

	event := NewStorefrontEvent(uuid.NewString(), eventType, s.now().UTC(), payload)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warnf("failed to publish %s event: %v", eventType, e.Wrap(op, err))
	}
}

func cartItemsPayload(items []domain.CartItem) []any {
	result := make([]any, 0, len(items))
	for _, item := range items {
		entry := map[string]any{
			"id":       item.ID,
			"name":     item.Name,
			"price":    item.Price,
			"quantity": item.Quantity,
		}
		if item.Size != nil {
			entry["size"] = *item.Size
		}
		result = append(result, entry)
	}

	return result
}
