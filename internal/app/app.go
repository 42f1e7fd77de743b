package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	config "github.com/DRSN-tech/luxe-couture-api/internal/cfg"
	v1Grpc "github.com/DRSN-tech/luxe-couture-api/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/luxe-couture-api/internal/delivery/v1/http"
	"github.com/DRSN-tech/luxe-couture-api/internal/infrastructure/kafka"
	"github.com/DRSN-tech/luxe-couture-api/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/luxe-couture-api/internal/repository/minio"
	"github.com/DRSN-tech/luxe-couture-api/internal/repository/mongodb"
	mongoConv "github.com/DRSN-tech/luxe-couture-api/internal/repository/mongodb/converter"
	"github.com/DRSN-tech/luxe-couture-api/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/luxe-couture-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/luxe-couture-api/internal/repository/redis"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/clients"
	"github.com/DRSN-tech/luxe-couture-api/pkg/closer"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/DRSN-tech/luxe-couture-api/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout    = 10 * time.Second
	forcedCloseTimeout = 3 * time.Second
	startupTimeout     = 30 * time.Second
	backendCheckTime   = 5 * time.Second
)

// Типы хранилища каталога, определяемые по схеме DATABASE_URL
const (
	storeMongo    = "mongodb"
	storePostgres = "postgres"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

// catalogStore — выбранное хранилище каталога и функция проверки связи с ним.
type catalogStore struct {
	repo   usecase.ProductRepository
	writer usecase.ProductWriter
	ping   func(ctx context.Context) error
	// prepare выполняется после успешного ping, например миграции PostgreSQL
	prepare func() error
}

// NewApp собирает зависимости приложения. Недоступные внешние сервисы не мешают старту:
// каталог отдаётся из встроенного набора, а события и подписки только логируются.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(forcedCloseTimeout),
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	store, err := a.initCatalogStore(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var repo usecase.ProductRepository
	if store != nil {
		repo = store.repo
		a.seedCatalog(ctx, store)
	}

	source := usecase.NewCatalogSource(repo, a.initImageResolver(ctx), memory.SampleProducts(), log)
	productUC := usecase.NewProductUC(source, log)
	storefrontUC := usecase.NewStorefrontUC(a.initSubscribers(ctx), a.initPublisher(), log)
	diagnosticsUC := usecase.NewDiagnosticsUC(repo, cfg.Database.URL != "", cfg.Database.Name != "", log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(v1Http.UseCases{
		Product:     productUC,
		Storefront:  storefrontUC,
		Diagnostics: diagnosticsUC,
	}, cfg.Http.CORSAllowOrigins)
	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
	a.grpcSrv.RegisterServices(productUC)

	return a, nil
}

// Run запускает HTTP и gRPC серверы и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	httpErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			httpErrCh <- err
		}
	}()

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-httpErrCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("received %s, stopping gracefully...", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.grpcSrv.Stop(shutdownCtx); err != nil {
		a.logger.Warnf("gRPC server shutdown: %v", err)
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "failed to release resources")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// storeKind определяет тип хранилища по схеме DATABASE_URL.
func storeKind(url string) (string, error) {
	lower := strings.ToLower(url)
	switch {
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return storeMongo, nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return storePostgres, nil
	default:
		return "", e.ErrUnsupportedDatabase
	}
}

// initCatalogStore возвращает nil, если DATABASE_URL не задан.
// Неизвестная схема URL считается ошибкой конфигурации и останавливает старт.
func (a *App) initCatalogStore(ctx context.Context) (*catalogStore, error) {
	dbCfg := a.cfg.Database
	if !dbCfg.Enabled() {
		a.logger.Warnf("DATABASE_URL is not set, serving the built-in catalog")
		return nil, nil
	}

	kind, err := storeKind(dbCfg.URL)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var store *catalogStore
	switch kind {
	case storeMongo:
		store, err = a.initMongoStore()
	case storePostgres:
		store, err = a.initPostgresStore(ctx)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	a.logger.Infof("catalog store: %s", kind)
	return store, nil
}

func (a *App) initMongoStore() (*catalogStore, error) {
	mc, err := clients.NewMongoClient(a.cfg.Database)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("mongodb", mc.Close)

	repo := mongodb.NewProductRepo(mc.DB, a.cfg.Database.Collection, mongoConv.NewProductConverter(), a.logger)

	return &catalogStore{
		repo:   repo,
		writer: repo,
		ping:   mc.Ping,
	}, nil
}

func (a *App) initPostgresStore(ctx context.Context) (*catalogStore, error) {
	db, err := postgres.Connect(ctx, a.cfg.Database)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("postgres", func(context.Context) error {
		db.Close()
		return nil
	})

	repo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter(), a.logger)

	return &catalogStore{
		repo:   repo,
		writer: repo,
		ping:   db.Ping,
		prepare: func() error {
			return db.RunMigrations(a.logger)
		},
	}, nil
}

// seedCatalog проверяет связь с хранилищем и при DATABASE_SEED_SAMPLE заливает
// встроенный каталог в пустое хранилище. Ошибки только логируются.
func (a *App) seedCatalog(ctx context.Context, store *catalogStore) {
	dbCfg := a.cfg.Database

	if err := clients.PingWithRetry(ctx, "catalog store", dbCfg.ConnectRetries, store.ping, a.logger); err != nil {
		a.logger.Errorf(err, "catalog store is unreachable, requests will use the built-in catalog")
		return
	}

	if store.prepare != nil {
		if err := store.prepare(); err != nil {
			a.logger.Errorf(err, "failed to prepare catalog store")
			return
		}
	}

	if !dbCfg.SeedSample {
		return
	}

	seeder := usecase.NewCatalogSeeder(store.repo, store.writer, a.logger)
	if n, err := seeder.Seed(ctx, memory.SampleProducts()); err != nil {
		a.logger.Errorf(err, "catalog seeding stopped after %d products", n)
	}
}

func (a *App) initSubscribers(ctx context.Context) usecase.SubscriberRepository {
	if !a.cfg.Redis.Enabled() {
		a.logger.Infof("REDIS_ADDR is not set, newsletter signups will only be logged")
		return nil
	}

	rc := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", rc.Close)

	checkCtx, cancel := context.WithTimeout(ctx, backendCheckTime)
	defer cancel()
	if err := rc.Ping(checkCtx); err != nil {
		a.logger.Warnf("redis is unreachable: %v", err)
	}

	return redis.NewSubscriberRepo(rc.Client, a.logger)
}

func (a *App) initPublisher() usecase.EventPublisher {
	if !a.cfg.Kafka.Enabled() {
		a.logger.Infof("KAFKA_BROKERS is not set, storefront events will not be published")
		return nil
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", producer.Close)

	if err := producer.EnsureTopic(backendCheckTime); err != nil {
		a.logger.Warnf("failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}

	return producer
}

func (a *App) initImageResolver(ctx context.Context) usecase.ImageResolver {
	if !a.cfg.Minio.Enabled() {
		return nil
	}

	mc, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client, image references are served as stored")
		return nil
	}

	checkCtx, cancel := context.WithTimeout(ctx, backendCheckTime)
	defer cancel()
	if err := clients.CheckBucket(checkCtx, mc, a.cfg.Minio.BucketName); err != nil {
		a.logger.Warnf("minio bucket check failed: %v", err)
	}

	return s3Repo.NewImageRepo(mc, a.cfg.Minio)
}
