package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	LedgerBackendDynamoDB = "dynamodb"
	LedgerBackendMemory   = "memory"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Log           LogConfig           `mapstructure:"log"`
	AWS           AWSConfig           `mapstructure:"aws"`
	Ledger        LedgerConfig        `mapstructure:"ledger"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	NATS          NATSConfig          `mapstructure:"nats"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	MercadoPago   MercadoPagoConfig   `mapstructure:"mercadopago"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

type ServerConfig struct {
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AWSConfig is local-friendly: DynamoDB Local ignores the static credentials
// but the SDK still requires them.
type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

type LedgerConfig struct {
	Backend       string `mapstructure:"backend"`
	RequestsTable string `mapstructure:"requests_table"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

type MinIOConfig struct {
	Endpoint  string        `mapstructure:"endpoint"`
	AccessKey string        `mapstructure:"access_key"`
	SecretKey string        `mapstructure:"secret_key"`
	Bucket    string        `mapstructure:"bucket"`
	UseSSL    bool          `mapstructure:"use_ssl"`
	URLExpiry time.Duration `mapstructure:"url_expiry"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
	Mock        bool   `mapstructure:"mock"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type NotificationsConfig struct {
	FinanceAddress         string `mapstructure:"finance_address"`
	PayingAuthorityAddress string `mapstructure:"paying_authority_address"`
	SenderAddress          string `mapstructure:"sender_address"`
	SenderName             string `mapstructure:"sender_name"`
}

// ErrMissingJWTSecret is returned when no signing secret is configured;
// an empty HS256 key would let anyone mint tokens.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Load reads ./configs/config.yaml when present and lets environment
// variables override every key. The .env file is loaded by the commands
// through godotenv/autoload.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	setDefaults(v)
	if err := bindEnvVariables(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Ledger.Backend = strings.ToLower(strings.TrimSpace(cfg.Ledger.Backend))
	if cfg.Ledger.Backend != LedgerBackendDynamoDB && cfg.Ledger.Backend != LedgerBackendMemory {
		return nil, fmt.Errorf("invalid ledger backend %q", cfg.Ledger.Backend)
	}
	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, ErrMissingJWTSecret
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("ledger.backend", LedgerBackendDynamoDB)
	v.SetDefault("ledger.requests_table", "payment_requests")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.dbname", "faepa")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("nats.subject", "faepa.notifications.email")

	v.SetDefault("minio.bucket", "payment-receipts")
	v.SetDefault("minio.url_expiry", 7*24*time.Hour)

	v.SetDefault("jwt.issuer", "faepa")

	v.SetDefault("notifications.sender_name", "FAEPA")
}

func bindEnvVariables(v *viper.Viper) error {
	bindings := map[string]string{
		"server.port":         "PORT",
		"server.mode":         "GIN_MODE",
		"server.cors_origins": "CORS_ORIGINS",

		"log.level":  "LOG_LEVEL",
		"log.format": "LOG_FORMAT",

		"aws.region":            "AWS_REGION",
		"aws.access_key_id":     "AWS_ACCESS_KEY_ID",
		"aws.secret_access_key": "AWS_SECRET_ACCESS_KEY",
		"aws.dynamodb_endpoint": "DYNAMODB_ENDPOINT",

		"ledger.backend":        "LEDGER_BACKEND",
		"ledger.requests_table": "REQUESTS_TABLE",

		"database.host":     "DB_HOST",
		"database.port":     "DB_PORT",
		"database.user":     "DB_USER",
		"database.password": "DB_PASSWORD",
		"database.dbname":   "DB_NAME",
		"database.sslmode":  "DB_SSLMODE",

		"redis.host":     "REDIS_HOST",
		"redis.port":     "REDIS_PORT",
		"redis.password": "REDIS_PASSWORD",
		"redis.db":       "REDIS_DB",

		"nats.url":     "NATS_URL",
		"nats.subject": "NATS_SUBJECT",

		"minio.endpoint":   "MINIO_ENDPOINT",
		"minio.access_key": "MINIO_ACCESS_KEY",
		"minio.secret_key": "MINIO_SECRET_KEY",
		"minio.bucket":     "MINIO_BUCKET",
		"minio.use_ssl":    "MINIO_USE_SSL",
		"minio.url_expiry": "MINIO_URL_EXPIRY",

		"mercadopago.access_token": "MERCADOPAGO_ACCESS_TOKEN",
		"mercadopago.mock":         "PAYMENT_GATEWAY_MOCK",

		"jwt.secret": "JWT_SECRET",
		"jwt.issuer": "JWT_ISSUER",

		"notifications.finance_address":          "FINANCE_EMAIL",
		"notifications.paying_authority_address": "PAYING_AUTHORITY_EMAIL",
		"notifications.sender_address":           "NOTIFICATION_SENDER_EMAIL",
		"notifications.sender_name":              "NOTIFICATION_SENDER_NAME",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}
	return nil
}
