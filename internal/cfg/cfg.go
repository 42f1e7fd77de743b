package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

type Config struct {
	Http     *HTTPConfig
	Grpc     *GRPCConfig
	Database *DatabaseCfg
	Redis    *RedisCfg
	Kafka    *KafkaCfg
	Minio    *MinIOCfg
}

type HTTPConfig struct {
	Port             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	CORSAllowOrigins []string
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

// DatabaseCfg описывает внешнее хранилище каталога. Пустой URL означает, что хранилище не настроено.
type DatabaseCfg struct {
	URL            string
	Name           string // имя базы MongoDB
	Collection     string // коллекция MongoDB с товарами
	ConnectTimeout time.Duration
	ConnectRetries int
	SeedSample     bool // залить встроенный каталог в пустое хранилище при старте
}

type RedisCfg struct {
	Addr        string // пустой адрес отключает хранение подписчиков
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

type KafkaCfg struct {
	Brokers           []string // пустой список отключает публикацию событий
	Topic             string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

type MinIOCfg struct {
	MinioEndpoint     string // пустой endpoint отключает подпись ссылок на изображения
	BucketName        string
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	Region            string
	PresignTTL        time.Duration
}

// Enabled сообщает, задан ли адрес хранилища каталога.
func (c *DatabaseCfg) Enabled() bool { return c != nil && c.URL != "" }

func (c *RedisCfg) Enabled() bool { return c != nil && c.Addr != "" }

func (c *KafkaCfg) Enabled() bool { return c != nil && len(c.Brokers) > 0 }

func (c *MinIOCfg) Enabled() bool { return c != nil && c.MinioEndpoint != "" }

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
// Перед чтением окружения подхватывается .env, если он есть.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("failed to read .env: %v", err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	database, err := loadDatabaseCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:     http,
		Grpc:     loadGRPCConfig(),
		Database: database,
		Redis:    redis,
		Kafka:    kafka,
		Minio:    minio,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8000"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
		defaultCORSOrigins  = "*"
	)

	port := getEnvOrDefault("PORT", getEnvOrDefault("HTTP_PORT", defaultPort))
	if _, err := strconv.Atoi(port); err != nil {
		log.Errorf(err, "invalid PORT")
		return nil, e.Wrap("PORT", e.ErrIncorrectEnvVariable)
	}

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:             port,
		ReadTimeout:      readTimeout,
		WriteTimeout:     writeTimeout,
		IdleTimeout:      idleTimeout,
		CORSAllowOrigins: splitCSV(getEnvOrDefault("CORS_ALLOW_ORIGINS", defaultCORSOrigins)),
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadDatabaseCfg(log logger.Logger) (*DatabaseCfg, error) {
	const (
		defaultCollection     = "product"
		defaultConnectTimeout = 5 * time.Second
		defaultConnectRetries = 3
	)

	connectTimeout, err := parseDurationEnv("DATABASE_CONNECT_TIMEOUT", defaultConnectTimeout)
	if err != nil {
		log.Errorf(err, "invalid DATABASE_CONNECT_TIMEOUT")
		return nil, err
	}

	retries, err := parseIntEnv("DATABASE_CONNECT_RETRIES", defaultConnectRetries)
	if err != nil {
		log.Errorf(err, "invalid DATABASE_CONNECT_RETRIES")
		return nil, e.Wrap("DATABASE_CONNECT_RETRIES", err)
	}

	seed, err := strconv.ParseBool(getEnvOrDefault("DATABASE_SEED_SAMPLE", "false"))
	if err != nil {
		log.Errorf(err, "invalid DATABASE_SEED_SAMPLE")
		return nil, e.Wrap("DATABASE_SEED_SAMPLE", e.ErrIncorrectEnvVariable)
	}

	return &DatabaseCfg{
		URL:            getEnv("DATABASE_URL"),
		Name:           getEnv("DATABASE_NAME"),
		Collection:     getEnvOrDefault("DATABASE_COLLECTION", defaultCollection),
		ConnectTimeout: connectTimeout,
		ConnectRetries: retries,
		SeedSample:     seed,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, e.Wrap("REDIS_DB_ID", err)
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, e.Wrap("MAX_RETRIES", err)
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        getEnv("REDIS_ADDR"),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "storefront-events"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           splitCSV(getEnv("KAFKA_BROKERS")),
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL     = false
		defaultRegion     = "us-east-1"
		defaultPresignTTL = time.Hour
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	presignTTL, err := parseDurationEnv("MINIO_PRESIGN_TTL", defaultPresignTTL)
	if err != nil {
		log.Errorf(err, "invalid MINIO_PRESIGN_TTL")
		return nil, err
	}

	cfg := &MinIOCfg{
		MinioEndpoint:     getEnv("MINIO_ENDPOINT"),
		BucketName:        getEnv("BUCKET_NAME"),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		Region:            getEnvOrDefault("MINIO_REGION", defaultRegion),
		PresignTTL:        presignTTL,
	}

	if cfg.Enabled() && cfg.BucketName == "" {
		err := fmt.Errorf("BUCKET_NAME is required when MINIO_ENDPOINT is set")
		log.Errorf(err, "missing BUCKET_NAME")
		return nil, err
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := getEnv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := getEnv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := getEnv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

// splitCSV разбивает список через запятую, отбрасывая пустые элементы.
func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
