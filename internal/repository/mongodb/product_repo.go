package mongodb

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/internal/repository/mongodb/converter"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepo реализует репозиторий продуктов поверх коллекции MongoDB.
type ProductRepo struct {
	db         *mongo.Database
	collection string
	conv       converter.ProductConverter
	logger     logger.Logger
}

func NewProductRepo(db *mongo.Database, collection string, conv converter.ProductConverter, logger logger.Logger) *ProductRepo {
	return &ProductRepo{
		db:         db,
		collection: collection,
		conv:       conv,
		logger:     logger,
	}
}

// ListProducts читает всю коллекцию в естественном порядке. Документы, которые не удалось
// декодировать или которые не проходят проверку конвертера, пропускаются с предупреждением.
func (p *ProductRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	cursor, err := p.db.Collection(p.collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	result := make([]domain.Product, 0)
	for cursor.Next(ctx) {
		var doc converter.ProductDocument
		if err := cursor.Decode(&doc); err != nil {
			p.logger.Warnf("skipping undecodable product document: %v", err)
			continue
		}

		product, err := p.conv.ToEntity(&doc)
		if err != nil {
			p.logger.Warnf("skipping product document %v: %v", doc.MongoID, err)
			continue
		}

		result = append(result, *product)
	}

	if err := cursor.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Diagnose возвращает имя базы и список её коллекций.
func (p *ProductRepo) Diagnose(ctx context.Context) (*usecase.StoreDiagnostics, error) {
	names, err := p.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewStoreDiagnostics(p.db.Name(), names), nil
}

// Upsert заменяет документ с _id, равным id товара, или создаёт новый.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) error {
	doc := p.conv.ToDocument(product)

	_, err := p.db.Collection(p.collection).ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: product.ID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
