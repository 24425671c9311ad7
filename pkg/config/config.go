package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Password PasswordConfig
	Orders   OrdersConfig
	Search   SearchConfig
	Flags    FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MERCADO_APP_ENV" required:"true"`
	Port         string `envconfig:"MERCADO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MERCADO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MERCADO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MERCADO_DB_DSN"`
	Driver string `envconfig:"MERCADO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MERCADO_DB_HOST"`
	LegacyPort     int    `envconfig:"MERCADO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MERCADO_DB_USER"`
	LegacyPassword string `envconfig:"MERCADO_DB_PASSWORD"`
	LegacyName     string `envconfig:"MERCADO_DB_NAME"`
	LegacySSLMode  string `envconfig:"MERCADO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MERCADO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MERCADO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MERCADO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MERCADO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MERCADO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MERCADO_REDIS_ADDR"`
	Password     string        `envconfig:"MERCADO_REDIS_PASSWORD"`
	DB           int           `envconfig:"MERCADO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MERCADO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MERCADO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MERCADO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MERCADO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MERCADO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MERCADO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MERCADO_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MERCADO_JWT_EXPIRATION_MINUTES" required:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MERCADO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MERCADO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MERCADO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MERCADO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MERCADO_ARGON_KEY_LEN" default:"32"`
}

type OrdersConfig struct {
	// TxTimeout bounds the whole finalization transaction; a hung store
	// connection must not block the request forever.
	TxTimeout      time.Duration `envconfig:"MERCADO_ORDER_TX_TIMEOUT" default:"10s"`
	IdempotencyTTL time.Duration `envconfig:"MERCADO_ORDER_IDEMPOTENCY_TTL" default:"168h"`
}

type SearchConfig struct {
	DefaultLimit int `envconfig:"MERCADO_SEARCH_DEFAULT_LIMIT" default:"20"`
	MaxLimit     int `envconfig:"MERCADO_SEARCH_MAX_LIMIT" default:"100"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MERCADO_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
