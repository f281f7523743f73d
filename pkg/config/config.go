package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "banquetes"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"BANQUETES_APP_ENV" default:"dev"`
	Port         string `envconfig:"BANQUETES_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"BANQUETES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BANQUETES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"BANQUETES_DB_DSN"`

	Host     string `envconfig:"BANQUETES_DB_HOST"`
	Port     int    `envconfig:"BANQUETES_DB_PORT" default:"5432"`
	User     string `envconfig:"BANQUETES_DB_USER"`
	Password string `envconfig:"BANQUETES_DB_PASSWORD"`
	Name     string `envconfig:"BANQUETES_DB_NAME"`
	SSLMode  string `envconfig:"BANQUETES_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BANQUETES_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BANQUETES_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BANQUETES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BANQUETES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either BANQUETES_DB_DSN or BANQUETES_DB_{HOST,USER,NAME} must be set")
	}
	d.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		d.Host,
		d.Port,
		d.Name,
		d.SSLMode,
	)
	return nil
}

type JWTConfig struct {
	Secret            string `envconfig:"BANQUETES_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"BANQUETES_JWT_ISSUER" default:"estadia-banquetes"`
	ExpirationMinutes int    `envconfig:"BANQUETES_JWT_EXPIRATION_MINUTES" default:"480"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"BANQUETES_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BANQUETES_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BANQUETES_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BANQUETES_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BANQUETES_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BANQUETES_CORS_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BANQUETES_AUTO_MIGRATE" default:"false"`
}
