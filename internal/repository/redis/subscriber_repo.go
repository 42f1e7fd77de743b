package redis

import (
	"context"
	"strings"

	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// SubscribersKey — множество email подписчиков рассылки.
const SubscribersKey = "newsletter:subscribers"

// SetClient — команды Redis, которые нужны репозиторию подписчиков.
type SetClient interface {
	SAdd(ctx context.Context, key string, members ...any) *r.IntCmd
}

// SubscriberRepo хранит подписчиков рассылки в множестве Redis.
type SubscriberRepo struct {
	client SetClient
	logger logger.Logger
}

func NewSubscriberRepo(client SetClient, logger logger.Logger) *SubscriberRepo {
	return &SubscriberRepo{
		client: client,
		logger: logger,
	}
}

// Add добавляет email в множество. Адрес приводится к нижнему регистру,
// поэтому повторная подписка в другом регистре не создаёт дубликат.
func (s *SubscriberRepo) Add(ctx context.Context, email string) (bool, error) {
	added, err := s.client.SAdd(ctx, SubscribersKey, normalizeEmail(email)).Result()
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return added > 0, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
