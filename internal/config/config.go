package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration read from the environment.
// cmd/api loads a .env file first (godotenv autoload), so local overrides
// live there.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	OrdersTable   string `env:"ORDERS_TABLE" envDefault:"design_orders"`
	PackagesTable string `env:"PACKAGES_TABLE" envDefault:"design_packages"`
	SettingsTable string `env:"SETTINGS_TABLE" envDefault:"settings"`
	PaymentsTable string `env:"PAYMENTS_TABLE" envDefault:"order_payments"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     string `env:"PAYMENT_GATEWAY_MOCK"`
	MercadoPagoMock        string `env:"MERCADOPAGO_MOCK"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// PaymentMockEnabled reports whether the payment gateway should skip Mercado Pago.
func (c Config) PaymentMockEnabled() bool {
	for _, v := range []string{c.PaymentGatewayMock, c.MercadoPagoMock} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
