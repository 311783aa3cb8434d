package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Stripe       StripeConfig
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
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RYDE_APP_ENV" required:"true"`
	Port         string `envconfig:"RYDE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RYDE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RYDE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RYDE_DB_DSN"`
	Driver string `envconfig:"RYDE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"RYDE_DB_HOST"`
	LegacyPort     int    `envconfig:"RYDE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RYDE_DB_USER"`
	LegacyPassword string `envconfig:"RYDE_DB_PASSWORD"`
	LegacyName     string `envconfig:"RYDE_DB_NAME"`
	LegacySSLMode  string `envconfig:"RYDE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RYDE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RYDE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RYDE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RYDE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type StripeConfig struct {
	SecretKey      string `envconfig:"RYDE_STRIPE_SECRET_KEY"`
	PublishableKey string `envconfig:"RYDE_STRIPE_PUBLISHABLE_KEY"`
	Env            string `envconfig:"RYDE_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"RYDE_AUTO_MIGRATE" default:"false"`
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
