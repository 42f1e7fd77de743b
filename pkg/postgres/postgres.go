package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	schema "github.com/DRSN-tech/luxe-couture-api/db"
	"github.com/DRSN-tech/luxe-couture-api/internal/cfg"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PgDatabase инкапсулирует подключение к PostgreSQL и управление миграциями.
type PgDatabase struct {
	Pool *pgxpool.Pool
	Dsn  string
	cfg  *cfg.DatabaseCfg
}

func NewPgDatabase(pool *pgxpool.Pool, cfg *cfg.DatabaseCfg, dsn string) *PgDatabase {
	return &PgDatabase{Pool: pool, cfg: cfg, Dsn: dsn}
}

// Connect создаёт пул соединений по DATABASE_URL. Пул ленивый: недоступная база
// не мешает старту, проверка связи делается отдельно через Ping.
func Connect(ctx context.Context, cfg *cfg.DatabaseCfg) (*PgDatabase, error) {
	const op = "PgDatabase.Connect"

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewPgDatabase(pool, cfg, cfg.URL), nil
}

func (db *PgDatabase) Ping(ctx context.Context) error {
	const op = "PgDatabase.Ping"
	ctx, cancel := context.WithTimeout(ctx, db.cfg.ConnectTimeout)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close корректно закрывает пул соединений к базе данных.
func (db *PgDatabase) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// RunMigrations применяет ожидающие миграции, встроенные в бинарник.
func (db *PgDatabase) RunMigrations(logger logger.Logger) error {
	const (
		op                 = "PgDatabase.RunMigrations"
		driverName         = "pgx"
		sourceName         = "iofs"
		databaseDriverName = "postgres"
	)

	sqlDb, err := sql.Open(driverName, db.Dsn)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer sqlDb.Close()

	source, err := iofs.New(schema.Migrations, schema.MigrationsDir)
	if err != nil {
		return e.Wrap(op, err)
	}

	driver, err := postgres.WithInstance(sqlDb, &postgres.Config{})
	if err != nil {
		return e.Wrap(op, err)
	}

	m, err := migrate.NewWithInstance(sourceName, source, databaseDriverName, driver)
	if err != nil {
		return e.Wrap(op, err)
	}

	start := time.Now()
	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debugf("%s: schema is up to date", op)
			return nil
		}
		return e.Wrap(op, err)
	}

	version, dirty, _ := m.Version()
	logger.Infof("migrations applied successfully: version=%d dirty=%t took=%s", version, dirty, time.Since(start))
	return nil
}
