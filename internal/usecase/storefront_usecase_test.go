package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartItem(id string, price float64, quantity int) domain.CartItem {
	return domain.CartItem{ID: id, Name: id, Price: price, Quantity: quantity}
}

func TestCartTotal(t *testing.T) {
	tests := map[string]struct {
		items []domain.CartItem
		want  float64
	}{
		"empty cart": {
			items: nil,
			want:  0,
		},
		"two lines": {
			items: []domain.CartItem{cartItem("a", 100, 2), cartItem("b", 49.995, 1)},
			want:  249.99,
		},
		"binary fractions add up exactly": {
			items: []domain.CartItem{cartItem("a", 0.1, 1), cartItem("b", 0.2, 1)},
			want:  0.3,
		},
		"quantity multiplies": {
			items: []domain.CartItem{cartItem("a", 19.99, 3)},
			want:  59.97,
		},
		"rounds up to whole amount": {
			items: []domain.CartItem{cartItem("a", 2.999, 1)},
			want:  3,
		},
		"rounds up third decimal": {
			items: []domain.CartItem{cartItem("a", 10.006, 1)},
			want:  10.01,
		},
		"rounds up small amount": {
			items: []domain.CartItem{cartItem("a", 0.019, 1)},
			want:  0.02,
		},
		"exact half cent rounds up": {
			items: []domain.CartItem{cartItem("a", 0.125, 1)},
			want:  0.13,
		},
		"zero price": {
			items: []domain.CartItem{cartItem("gift", 0, 5)},
			want:  0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, CartTotal(tc.items))
		})
	}
}

func TestStorefrontCheckout(t *testing.T) {
	publisher := &fakePublisher{}
	uc := NewStorefrontUC(nil, publisher, discardLogger())
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	uc.now = func() time.Time { return fixed }

	email := "buyer@example.com"
	res := uc.Checkout(context.Background(), NewCheckoutReq(
		[]domain.CartItem{cartItem("a", 100, 2), cartItem("b", 49.995, 1)},
		&email,
		nil,
	))

	assert.Equal(t, 249.99, res.Total)
	assert.Equal(t, "Checkout initialized", res.Message)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, EventCheckoutInitialized, event.Type)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, fixed.UTC(), event.OccurredAt)
	assert.Equal(t, 249.99, event.Payload["total"])
	assert.Equal(t, email, event.Payload["email"])
	assert.NotContains(t, event.Payload, "shipping_address")
	assert.Len(t, event.Payload["items"], 2)
}

func TestStorefrontCheckoutIgnoresPublisherFailure(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("kafka down")}
	uc := NewStorefrontUC(nil, publisher, discardLogger())

	res := uc.Checkout(context.Background(), NewCheckoutReq([]domain.CartItem{}, nil, nil))

	assert.Equal(t, 0.0, res.Total)
	assert.Equal(t, "Checkout initialized", res.Message)
}

func TestStorefrontSubscribe(t *testing.T) {
	subscribers := &fakeSubscribers{}
	publisher := &fakePublisher{}
	uc := NewStorefrontUC(subscribers, publisher, discardLogger())

	res := uc.Subscribe(context.Background(), domain.NewNewsletterSignup("a@b.co"))
	assert.Equal(t, "a@b.co", res.Email)
	assert.Equal(t, "Subscribed", res.Message)

	again := uc.Subscribe(context.Background(), domain.NewNewsletterSignup("a@b.co"))
	assert.Equal(t, "Subscribed", again.Message)

	assert.Len(t, subscribers.emails, 1)
	require.Len(t, publisher.events, 2)
	assert.Equal(t, EventNewsletterSubscribed, publisher.events[0].Type)
	assert.Equal(t, "a@b.co", publisher.events[0].Payload["email"])
}

func TestStorefrontSubscribeIgnoresStoreFailure(t *testing.T) {
	uc := NewStorefrontUC(&fakeSubscribers{err: errors.New("redis down")}, nil, discardLogger())

	res := uc.Subscribe(context.Background(), domain.NewNewsletterSignup("a@b.co"))

	assert.Equal(t, "a@b.co", res.Email)
	assert.Equal(t, "Subscribed", res.Message)
}

func TestStorefrontContact(t *testing.T) {
	publisher := &fakePublisher{}
	uc := NewStorefrontUC(nil, publisher, discardLogger())

	msg := domain.NewContactMessage("Ann", "ann@example.com", "Do you ship to Oslo?")
	res := uc.Contact(context.Background(), msg)

	assert.Equal(t, *msg, res.Received)
	assert.Equal(t, "We will be in touch", res.Message)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, EventContactReceived, publisher.events[0].Type)
	assert.Equal(t, "Do you ship to Oslo?", publisher.events[0].Payload["message"])
}
