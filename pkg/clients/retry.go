package clients

import (
	"context"
	"time"

	"github.com/DRSN-tech/luxe-couture-api/pkg/jitter"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

const (
	pingBackoffBase = 200 * time.Millisecond
	pingBackoffMax  = 5 * time.Second
)

// PingWithRetry вызывает ping до attempts раз с экспоненциальной задержкой и джиттером.
// Возвращает последнюю ошибку, если ни одна попытка не удалась.
func PingWithRetry(ctx context.Context, name string, attempts int, ping func(ctx context.Context) error, log logger.Logger) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = ping(ctx); err == nil {
			return nil
		}

		log.Warnf("%s ping attempt %d/%d failed: %v", name, attempt+1, attempts, err)
		if attempt == attempts-1 {
			break
		}

		select {
		case <-time.After(jitter.ExponentialBackoff(pingBackoffBase, pingBackoffMax, attempt, jitter.DefaultJitter)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}
