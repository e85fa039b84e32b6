package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the whole app configuration, read from the environment.
type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	GoEnv string `envconfig:"GO_ENV" default:"dev"`

	DatabaseURL      string `envconfig:"DATABASE_URL" default:""`
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"urban"`
	PostgresSSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Flat fee added to every order, whole KES.
	DeliveryFee int64 `envconfig:"DELIVERY_FEE" default:"200"`

	Mpesa MpesaConfig
}

// MpesaConfig holds the Daraja API credentials.
type MpesaConfig struct {
	BaseURL        string `envconfig:"MPESA_BASE_URL" default:"https://sandbox.safaricom.co.ke"`
	ConsumerKey    string `envconfig:"MPESA_CONSUMER_KEY" default:""`
	ConsumerSecret string `envconfig:"MPESA_CONSUMER_SECRET" default:""`
	Shortcode      string `envconfig:"MPESA_SHORTCODE" default:"174379"`
	Passkey        string `envconfig:"MPESA_PASSKEY" default:""`
	CallbackURL    string `envconfig:"MPESA_CALLBACK_URL" default:""`
	AccountPrefix  string `envconfig:"MPESA_ACCOUNT_PREFIX" default:"URBAN"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
