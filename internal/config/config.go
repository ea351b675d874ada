package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"

	DefaultMongoDatabase   = "animals"
	DefaultMongoCollection = "bird"
)

type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Storage StorageConfig

	// CacheTTL > 0 activa el cache read-through delante del storage.
	CacheTTL time.Duration

	Log LogConfig
}

type StorageConfig struct {
	Driver string

	PostgresDSN string
	SQLitePath  string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

// Load lee .env (si existe) y después el entorno.
// Las variables ya seteadas en el entorno ganan sobre el archivo.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv arma la config desde getenv (os.Getenv en producción, un map en tests).
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port: get("PORT", "8080"),
		Storage: StorageConfig{
			Driver:          strings.ToLower(get("STORAGE_DRIVER", "")),
			PostgresDSN:     get("DB_DSN", ""),
			SQLitePath:      get("SQLITE_PATH", "data/birds.db"),
			MongoURI:        get("MONGO_URI", ""),
			MongoDatabase:   get("MONGO_DATABASE", DefaultMongoDatabase),
			MongoCollection: get("MONGO_COLLECTION", DefaultMongoCollection),
		},
		Log: LogConfig{
			Level:  get("LOG_LEVEL", "info"),
			Format: get("LOG_FORMAT", "text"),
			App:    get("APP_NAME", "bird-service"),
		},
	}

	var err error
	if cfg.ReadTimeout, err = duration(get("READ_TIMEOUT", "5s"), "READ_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = duration(get("WRITE_TIMEOUT", "10s"), "WRITE_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = duration(get("CACHE_TTL", "0s"), "CACHE_TTL"); err != nil {
		return Config{}, err
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = inferDriver(cfg.Storage)
	}
	if err := cfg.Storage.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr devuelve la dirección de escucha (":PORT").
func (c Config) Addr() string {
	return ":" + c.Port
}

// Sin driver explícito: Postgres si hay DSN, Mongo si hay URI, si no memoria.
func inferDriver(s StorageConfig) string {
	switch {
	case s.PostgresDSN != "":
		return DriverPostgres
	case s.MongoURI != "":
		return DriverMongo
	default:
		return DriverMemory
	}
}

func (s StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory, DriverSQLite:
		return nil
	case DriverPostgres:
		if s.PostgresDSN == "" {
			return fmt.Errorf("%w: DB_DSN required for driver %s", ErrInvalidConfig, s.Driver)
		}
		return nil
	case DriverMongo:
		if s.MongoURI == "" {
			return fmt.Errorf("%w: MONGO_URI required for driver %s", ErrInvalidConfig, s.Driver)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown STORAGE_DRIVER %q", ErrInvalidConfig, s.Driver)
	}
}

func duration(v, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, key)
	}
	return d, nil
}
