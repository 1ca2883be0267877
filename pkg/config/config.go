package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/enums"
)

const (
	EnvPrefix = "SALESLEDGER"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv      = "SALESLEDGER_APP_ENV"
	EnvPort        = "SALESLEDGER_APP_PORT"
	EnvDBDSN       = "SALESLEDGER_DB_DSN"
	EnvDBHost      = "SALESLEDGER_DB_HOST"
	EnvDBUser      = "SALESLEDGER_DB_USER"
	EnvDBName      = "SALESLEDGER_DB_NAME"
	EnvRedisURL    = "SALESLEDGER_REDIS_URL"
	EnvTotalPolicy = "SALESLEDGER_LEDGER_TOTAL_POLICY"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Ledger       LedgerConfig
	Reports      ReportsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Ledger.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALESLEDGER_APP_ENV" required:"true"`
	Port         string `envconfig:"SALESLEDGER_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SALESLEDGER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALESLEDGER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"SALESLEDGER_DB_DSN"`

	LegacyHost     string `envconfig:"SALESLEDGER_DB_HOST"`
	LegacyPort     int    `envconfig:"SALESLEDGER_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SALESLEDGER_DB_USER"`
	LegacyPassword string `envconfig:"SALESLEDGER_DB_PASSWORD"`
	LegacyName     string `envconfig:"SALESLEDGER_DB_NAME"`
	LegacySSLMode  string `envconfig:"SALESLEDGER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SALESLEDGER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SALESLEDGER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SALESLEDGER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SALESLEDGER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional: with no URL or address the report cache is skipped.
type RedisConfig struct {
	URL          string        `envconfig:"SALESLEDGER_REDIS_URL"`
	Address      string        `envconfig:"SALESLEDGER_REDIS_ADDR"`
	Password     string        `envconfig:"SALESLEDGER_REDIS_PASSWORD"`
	DB           int           `envconfig:"SALESLEDGER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SALESLEDGER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SALESLEDGER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SALESLEDGER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SALESLEDGER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SALESLEDGER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type LedgerConfig struct {
	TotalPolicy string `envconfig:"SALESLEDGER_LEDGER_TOTAL_POLICY" default:"trust"`
}

func (l LedgerConfig) validate() error {
	if _, err := enums.ParseTotalPolicy(l.TotalPolicy); err != nil {
		return fmt.Errorf("invalid %s: %w", EnvTotalPolicy, err)
	}
	return nil
}

// Policy returns the parsed total policy. Load guarantees it is valid.
func (l LedgerConfig) Policy() enums.TotalPolicy {
	policy, err := enums.ParseTotalPolicy(l.TotalPolicy)
	if err != nil {
		return enums.TotalPolicyTrust
	}
	return policy
}

type ReportsConfig struct {
	CacheTTL time.Duration `envconfig:"SALESLEDGER_REPORTS_CACHE_TTL" default:"5m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SALESLEDGER_FEATURE_AUTO_MIGRATE" default:"false"`
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
	for _, env := range []string{EnvDBHost, EnvDBUser, EnvDBName} {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   "/" + db.LegacyName,
	}
	if db.LegacyPassword != "" {
		u.User = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	} else {
		u.User = url.User(db.LegacyUser)
	}
	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
