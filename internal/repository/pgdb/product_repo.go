package pgdb

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/internal/domain"
	"github.com/DRSN-tech/luxe-couture-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jimlawless/whereami"
)

// DBPool — подмножество pgxpool.Pool, которое нужно репозиторию.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool   DBPool
	conv   converter.ProductConverter
	logger logger.Logger
}

func NewProductRepo(pool DBPool, conv converter.ProductConverter, logger logger.Logger) *ProductRepo {
	return &ProductRepo{
		pool:   pool,
		conv:   conv,
		logger: logger,
	}
}

const maxDiagnosticTables = 10

// ListProducts читает весь каталог в порядке вставки. Строки, которые не проходят
// проверку конвертера, пропускаются с предупреждением.
func (p *ProductRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, price, gender, category, sizes, images, description, tags, featured, new_arrival
		FROM products
		ORDER BY position
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Price, &model.Gender, &model.Category,
			&model.Sizes, &model.Images, &model.Description, &model.Tags,
			&model.Featured, &model.NewArrival,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		product, err := p.conv.ToEntity(&model)
		if err != nil {
			p.logger.Warnf("skipping product row %q: %v", model.ID.String, err)
			continue
		}

		result = append(result, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Diagnose возвращает имя базы и до десяти таблиц схемы public.
func (p *ProductRepo) Diagnose(ctx context.Context) (*usecase.StoreDiagnostics, error) {
	var name string
	if err := p.pool.QueryRow(ctx, `SELECT current_database()`).Scan(&name); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, maxDiagnosticTables)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	tables := make([]string, 0, maxDiagnosticTables)
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewStoreDiagnostics(name, tables), nil
}

// Upsert добавляет товар или обновляет существующий с тем же id. Позиция в каталоге сохраняется.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, price, gender, category, sizes, images, description, tags, featured, new_arrival)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			gender = EXCLUDED.gender,
			category = EXCLUDED.category,
			sizes = EXCLUDED.sizes,
			images = EXCLUDED.images,
			description = EXCLUDED.description,
			tags = EXCLUDED.tags,
			featured = EXCLUDED.featured,
			new_arrival = EXCLUDED.new_arrival
	`

	_, err := p.pool.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Gender, product.Category,
		product.Sizes, product.Images, product.Description, product.Tags,
		product.Featured, product.NewArrival,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
