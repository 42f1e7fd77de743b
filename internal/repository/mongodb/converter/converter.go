package converter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductConverter преобразует документы MongoDB в domain.Product и обратно.
type ProductConverter interface {
	ToEntity(doc *ProductDocument) (*domain.Product, error)
	ToDocument(entity *domain.Product) *ProductDocument
}

type productConverter struct{}

func NewProductConverter() ProductConverter {
	return productConverter{}
}

// ToEntity возвращает e.ErrInvalidRecord, если не хватает обязательного поля или цена некорректна.
// Идентификатор берётся из _id, а при его отсутствии из поля id.
func (productConverter) ToEntity(doc *ProductDocument) (*domain.Product, error) {
	id, err := documentID(doc)
	if err != nil {
		return nil, err
	}

	name, err := required("name", doc.Name)
	if err != nil {
		return nil, err
	}

	if doc.Price == nil {
		return nil, fmt.Errorf("%w: price is missing", e.ErrInvalidRecord)
	}
	price := *doc.Price
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fmt.Errorf("%w: price %v is out of range", e.ErrInvalidRecord, price)
	}

	gender, err := required("gender", doc.Gender)
	if err != nil {
		return nil, err
	}

	category, err := required("category", doc.Category)
	if err != nil {
		return nil, err
	}

	product := domain.NewProduct(id, name, price, gender, category)
	product.Sizes = append(product.Sizes, doc.Sizes...)
	product.Images = append(product.Images, doc.Images...)
	product.Tags = append(product.Tags, doc.Tags...)
	if doc.Description != nil {
		description := *doc.Description
		product.Description = &description
	}
	product.Featured = doc.Featured != nil && *doc.Featured
	product.NewArrival = doc.NewArrival != nil && *doc.NewArrival

	return product, nil
}

// ToDocument кладёт id товара в _id, чтобы повторная запись заменяла документ.
func (productConverter) ToDocument(entity *domain.Product) *ProductDocument {
	featured := entity.Featured
	newArrival := entity.NewArrival
	price := entity.Price

	return &ProductDocument{
		MongoID:     entity.ID,
		Name:        &entity.Name,
		Price:       &price,
		Gender:      &entity.Gender,
		Category:    &entity.Category,
		Sizes:       nonNil(entity.Sizes),
		Images:      nonNil(entity.Images),
		Description: entity.Description,
		Tags:        nonNil(entity.Tags),
		Featured:    &featured,
		NewArrival:  &newArrival,
	}
}

func documentID(doc *ProductDocument) (string, error) {
	switch v := doc.MongoID.(type) {
	case nil:
	case primitive.ObjectID:
		return v.Hex(), nil
	case string:
		if v != "" {
			return v, nil
		}
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("%w: unsupported _id type %T", e.ErrInvalidRecord, v)
	}

	return required("id", doc.ID)
}

func required(field string, v *string) (string, error) {
	if v == nil || *v == "" {
		return "", fmt.Errorf("%w: %s is missing", e.ErrInvalidRecord, field)
	}

	return *v, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
