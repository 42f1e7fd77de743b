package converter

import (
	"fmt"
	"math"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/jackc/pgx/v5/pgtype"
)

// ProductConverter преобразует строки таблицы products в domain.Product.
type ProductConverter interface {
	ToEntity(model *ProductModel) (*domain.Product, error)
}

type productConverter struct{}

func NewProductConverter() ProductConverter {
	return productConverter{}
}

// ToEntity возвращает e.ErrInvalidRecord, если не хватает обязательного поля или цена некорректна.
func (productConverter) ToEntity(model *ProductModel) (*domain.Product, error) {
	id, err := requiredText("id", model.ID)
	if err != nil {
		return nil, err
	}

	name, err := requiredText("name", model.Name)
	if err != nil {
		return nil, err
	}

	if !model.Price.Valid {
		return nil, fmt.Errorf("%w: price is missing", e.ErrInvalidRecord)
	}
	price := model.Price.Float64
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fmt.Errorf("%w: price %v is out of range", e.ErrInvalidRecord, price)
	}

	gender, err := requiredText("gender", model.Gender)
	if err != nil {
		return nil, err
	}

	category, err := requiredText("category", model.Category)
	if err != nil {
		return nil, err
	}

	sizes, err := textArray("sizes", model.Sizes)
	if err != nil {
		return nil, err
	}

	images, err := textArray("images", model.Images)
	if err != nil {
		return nil, err
	}

	tags, err := textArray("tags", model.Tags)
	if err != nil {
		return nil, err
	}

	product := domain.NewProduct(id, name, price, gender, category)
	product.Sizes = append(product.Sizes, sizes...)
	product.Images = append(product.Images, images...)
	product.Tags = append(product.Tags, tags...)
	if model.Description.Valid {
		description := model.Description.String
		product.Description = &description
	}
	product.Featured = model.Featured.Valid && model.Featured.Bool
	product.NewArrival = model.NewArrival.Valid && model.NewArrival.Bool

	return product, nil
}

func requiredText(field string, v pgtype.Text) (string, error) {
	if !v.Valid || v.String == "" {
		return "", fmt.Errorf("%w: %s is missing", e.ErrInvalidRecord, field)
	}

	return v.String, nil
}

// textArray отклоняет массив с NULL-элементом. NULL вместо всего массива считается пустым списком.
func textArray(field string, values []pgtype.Text) ([]string, error) {
	res := make([]string, 0, len(values))
	for i, v := range values {
		if !v.Valid {
			return nil, fmt.Errorf("%w: %s[%d] is null", e.ErrInvalidRecord, field, i)
		}
		res = append(res, v.String)
	}

	return res, nil
}
