package clients

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/internal/cfg"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient держит подключение к MongoDB и базу каталога.
type MongoClient struct {
	Client *mongo.Client
	DB     *mongo.Database
	cfg    *cfg.DatabaseCfg
}

// NewMongoClient создаёт клиента. Драйвер подключается лениво, поэтому недоступный сервер
// здесь не приводит к ошибке.
func NewMongoClient(cfg *cfg.DatabaseCfg) (*MongoClient, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &MongoClient{
		Client: client,
		DB:     client.Database(cfg.Name),
		cfg:    cfg,
	}, nil
}

func (m *MongoClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (m *MongoClient) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
