package pgdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "name", "price", "gender", "category", "sizes", "images", "description", "tags", "featured", "new_arrival",
}

func texts(values ...string) []pgtype.Text {
	res := make([]pgtype.Text, 0, len(values))
	for _, v := range values {
		res = append(res, pgtype.Text{String: v, Valid: true})
	}
	return res
}

func newTestRepo(t *testing.T) (*ProductRepo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewProductRepo(mock, converter.NewProductConverter(), logger.New(io.Discard, slog.LevelDebug)), mock
}

func TestListProducts(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := pgxmock.NewRows(productColumns).
		AddRow("dior-heel-01", "Patent Leather Stiletto", 980.0, "women", "shoes",
			texts("36", "37"), texts("heels/dior.jpg"), "Glossy patent leather.", texts("heels", "gold"), true, true).
		AddRow("broken", "No Price", nil, "women", "shoes",
			texts(), texts(), nil, texts(), false, false).
		AddRow("balenciaga-tee", "Logo Cotton T-Shirt", 450.0, "unisex", "tops",
			texts(), texts(), nil, texts(), false, false)

	mock.ExpectQuery("SELECT id, name, price").WillReturnRows(rows)

	got, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, got, 2)
	assert.Equal(t, "dior-heel-01", got[0].ID)
	assert.Equal(t, 980.0, got[0].Price)
	assert.Equal(t, []string{"heels", "gold"}, got[0].Tags)
	require.NotNil(t, got[0].Description)
	assert.Equal(t, "Glossy patent leather.", *got[0].Description)
	assert.True(t, got[0].Featured)
	assert.True(t, got[0].NewArrival)

	assert.Equal(t, "balenciaga-tee", got[1].ID)
	assert.Nil(t, got[1].Description)
	assert.NotNil(t, got[1].Sizes)
}

func TestListProductsSkipsNullArrayElement(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := pgxmock.NewRows(productColumns).
		AddRow("st-laurent-coat", "Wool Cashmere Overcoat", 2490.0, "men", "outerwear",
			texts("M", "L"), texts(), nil, texts("coat"), true, false).
		AddRow("null-size", "Silk Scarf", 320.0, "women", "accessories",
			[]pgtype.Text{{String: "S", Valid: true}, {}}, texts(), nil, texts(), false, false).
		AddRow("ysl-boots-chelsea", "Leather Chelsea Boots", 1290.0, "men", "shoes",
			texts("42"), texts(), nil, texts("boots"), false, true)

	mock.ExpectQuery("SELECT id, name, price").WillReturnRows(rows)

	got, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, got, 2)
	assert.Equal(t, "st-laurent-coat", got[0].ID)
	assert.Equal(t, []string{"M", "L"}, got[0].Sizes)
	assert.Equal(t, "ysl-boots-chelsea", got[1].ID)
}

func TestListProductsEmpty(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT id, name, price").WillReturnRows(pgxmock.NewRows(productColumns))

	got, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestListProductsQueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT id, name, price").WillReturnError(errors.New("connection refused"))

	_, err := repo.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDiagnose(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT current_database").
		WillReturnRows(pgxmock.NewRows([]string{"current_database"}).AddRow("luxe"))
	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs(maxDiagnosticTables).
		WillReturnRows(pgxmock.NewRows([]string{"table_name"}).AddRow("products").AddRow("schema_migrations"))

	got, err := repo.Diagnose(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "luxe", got.Name)
	assert.Equal(t, []string{"products", "schema_migrations"}, got.Collections)
}

func TestDiagnoseError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery("SELECT current_database").WillReturnError(errors.New("permission denied"))

	_, err := repo.Diagnose(context.Background())
	require.Error(t, err)
}

func TestUpsert(t *testing.T) {
	repo, mock := newTestRepo(t)

	product := domain.NewProduct("balenciaga-tee", "Logo Cotton T-Shirt", 450, "unisex", "tops")

	mock.ExpectExec("INSERT INTO products").
		WithArgs("balenciaga-tee", "Logo Cotton T-Shirt", 450.0, "unisex", "tops",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), false, false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), product))
	require.NoError(t, mock.ExpectationsWereMet())
}
