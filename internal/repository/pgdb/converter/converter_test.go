package converter

import (
	"errors"
	"math"
	"testing"

	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) pgtype.Text { return pgtype.Text{String: s, Valid: true} }

func validModel() *ProductModel {
	return &ProductModel{
		ID:       text("ysl-boots-chelsea"),
		Name:     text("Leather Chelsea Boots"),
		Price:    pgtype.Float8{Float64: 1290, Valid: true},
		Gender:   text("men"),
		Category: text("shoes"),
		Tags:     []pgtype.Text{text("boots"), text("leather")},
		Featured: pgtype.Bool{Bool: true, Valid: true},
	}
}

func TestToEntity(t *testing.T) {
	got, err := NewProductConverter().ToEntity(validModel())
	require.NoError(t, err)

	assert.Equal(t, "ysl-boots-chelsea", got.ID)
	assert.Equal(t, 1290.0, got.Price)
	assert.Equal(t, []string{}, got.Sizes)
	assert.Equal(t, []string{}, got.Images)
	assert.Equal(t, []string{"boots", "leather"}, got.Tags)
	assert.Nil(t, got.Description)
	assert.True(t, got.Featured)
	assert.False(t, got.NewArrival)
}

func TestToEntityRejectsInvalidRows(t *testing.T) {
	tests := map[string]func(m *ProductModel){
		"missing id":       func(m *ProductModel) { m.ID = pgtype.Text{} },
		"empty name":       func(m *ProductModel) { m.Name = text("") },
		"missing price":    func(m *ProductModel) { m.Price = pgtype.Float8{} },
		"negative price":   func(m *ProductModel) { m.Price = pgtype.Float8{Float64: -1, Valid: true} },
		"nan price":        func(m *ProductModel) { m.Price = pgtype.Float8{Float64: math.NaN(), Valid: true} },
		"missing gender":   func(m *ProductModel) { m.Gender = pgtype.Text{} },
		"missing category": func(m *ProductModel) { m.Category = pgtype.Text{} },
		"null size":        func(m *ProductModel) { m.Sizes = []pgtype.Text{text("S"), {}} },
		"null tag":         func(m *ProductModel) { m.Tags = []pgtype.Text{{}} },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			m := validModel()
			mutate(m)

			_, err := NewProductConverter().ToEntity(m)
			assert.True(t, errors.Is(err, e.ErrInvalidRecord))
		})
	}
}
