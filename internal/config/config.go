package config

import (
	"errors"
	"fmt"
	"strings"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"storefront.db"`

	Yuno Yuno `envPrefix:"YUNO_"`
}

type Yuno struct {
	AccountCode      string `env:"ACCOUNT_CODE"`
	PublicAPIKey     string `env:"PUBLIC_API_KEY"`
	PrivateSecretKey string `env:"PRIVATE_SECRET_KEY"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsProduction() bool {
	return e.Name == "production"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func (h HTTPServer) Address() string {
	return h.Host + ":" + h.Port
}

// Validate checks the credentials without which no payment can ever be
// attempted. Missing keys are fatal at startup.
func (c *Config) Validate() error {
	var missing []string
	if c.Yuno.AccountCode == "" {
		missing = append(missing, "YUNO_ACCOUNT_CODE")
	}
	if c.Yuno.PublicAPIKey == "" {
		missing = append(missing, "YUNO_PUBLIC_API_KEY")
	}
	if c.Yuno.PrivateSecretKey == "" {
		missing = append(missing, "YUNO_PRIVATE_SECRET_KEY")
	}
	if len(missing) > 0 {
		return errors.New("missing required environment variables: " + strings.Join(missing, ", "))
	}
	return nil
}

// Environment suffix of the provider API host, keyed by public key prefix.
var apiKeyPrefixToSuffix = map[string]string{
	"dev":     "-dev",
	"staging": "-staging",
	"sandbox": "-sandbox",
	"prod":    "",
}

// APIBaseURL derives the provider base URL from the public key's environment
// prefix (e.g. "sandbox_..." -> https://api-sandbox.y.uno). An unrecognized
// prefix is a configuration error.
func (y Yuno) APIBaseURL() (string, error) {
	prefix, _, _ := strings.Cut(y.PublicAPIKey, "_")
	suffix, ok := apiKeyPrefixToSuffix[prefix]
	if !ok {
		return "", fmt.Errorf("unknown public api key prefix %q", prefix)
	}
	return fmt.Sprintf("https://api%s.y.uno", suffix), nil
}
