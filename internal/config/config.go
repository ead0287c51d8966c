package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Backend identifies which persistence strategy the process runs against.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// ErrDatabaseURLRequired is returned when production runs without a remote DSN.
var ErrDatabaseURLRequired = errors.New("DATABASE_URL is required in production (set FORCE_LOCAL_DB=1 to override)")

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig
	Cache    CacheConfig
	RestDB   RestDBConfig
	Storage  StorageConfig
	Geocoder GeocoderConfig
	Auth     AuthConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	URL             string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type SQLiteConfig struct {
	// DataDir holds the embedded database file. Created on demand.
	DataDir    string
	ForceLocal bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ListingCacheTTL time.Duration
	DraftTTL        time.Duration
}

// RestDBConfig points at the managed read API (PostgREST-style) used as the
// preferred path for listing queries.
type RestDBConfig struct {
	URL            string
	AnonKey        string
	RequestTimeout time.Duration
}

type StorageConfig struct {
	Bucket   string
	Region   string
	Endpoint string
}

type GeocoderConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
}

// AuthConfig carries third-party auth and bot-protection keys. The service
// does not validate sessions itself; the keys are recognized so deployments
// can pass them through to the edge.
type AuthConfig struct {
	ClerkSecretKey string
	ArcjetKey      string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; environment variables alone are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("NODE_ENV"),
		},
		Database: DatabaseConfig{
			URL:             viper.GetString("DATABASE_URL"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		SQLite: SQLiteConfig{
			DataDir:    viper.GetString("SQLITE_DATA_DIR"),
			ForceLocal: viper.GetBool("FORCE_LOCAL_DB"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ListingCacheTTL: time.Duration(viper.GetInt("LISTING_CACHE_TTL")) * time.Second,
			DraftTTL:        time.Duration(viper.GetInt("DRAFT_TTL")) * time.Second,
		},
		RestDB: RestDBConfig{
			URL:            viper.GetString("RESTDB_URL"),
			AnonKey:        viper.GetString("RESTDB_ANON_KEY"),
			RequestTimeout: time.Duration(viper.GetInt("RESTDB_REQUEST_TIMEOUT")) * time.Second,
		},
		Storage: StorageConfig{
			Bucket:   viper.GetString("STORAGE_BUCKET"),
			Region:   viper.GetString("STORAGE_REGION"),
			Endpoint: viper.GetString("STORAGE_ENDPOINT"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:        viper.GetString("ONEMAP_BASE_URL"),
			APIKey:         viper.GetString("ONEMAP_API_KEY"),
			RequestTimeout: time.Duration(viper.GetInt("ONEMAP_REQUEST_TIMEOUT")) * time.Second,
		},
		Auth: AuthConfig{
			ClerkSecretKey: viper.GetString("CLERK_SECRET_KEY"),
			ArcjetKey:      viper.GetString("ARCJET_KEY"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.SQLite.DataDir == "" {
		cfg.SQLite.DataDir = ".sqlite-data"
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Cache.ListingCacheTTL == 0 {
		cfg.Cache.ListingCacheTTL = 60 * time.Second
	}
	if cfg.Cache.DraftTTL == 0 {
		// Session-scoped: drafts survive reloads, not long absences.
		cfg.Cache.DraftTTL = 12 * time.Hour
	}
	if cfg.RestDB.RequestTimeout == 0 {
		cfg.RestDB.RequestTimeout = 10 * time.Second
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = "https://www.onemap.gov.sg"
	}
	if cfg.Geocoder.RequestTimeout == 0 {
		cfg.Geocoder.RequestTimeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// IsProduction reports whether the process runs with the production mode flag.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// ResolveBackend picks the persistence strategy once at startup.
//
// FORCE_LOCAL_DB always wins. Outside production a missing DATABASE_URL
// silently selects the embedded database; production without a DSN is a
// configuration error.
func (c *Config) ResolveBackend() (Backend, error) {
	if c.SQLite.ForceLocal {
		return BackendSQLite, nil
	}
	if c.Database.URL == "" {
		if c.IsProduction() {
			return "", ErrDatabaseURLRequired
		}
		return BackendSQLite, nil
	}
	return BackendPostgres, nil
}

// RestDBEnabled reports whether the managed read API is configured for the
// preferred listing path. Forcing the local backend disables it as well.
func (c *Config) RestDBEnabled() bool {
	return !c.SQLite.ForceLocal && c.RestDB.URL != "" && c.RestDB.AnonKey != ""
}

// RemoteStorageEnabled mirrors the image pipeline's strategy choice: object
// storage is used only when configured and the environment is production.
func (c *Config) RemoteStorageEnabled() bool {
	return c.IsProduction() && c.Storage.Bucket != ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
