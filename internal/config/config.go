// Package config loads the runtime configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the launchpad configuration, read from environment
// variables with an optional .env file for local development.
type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	HTTPServer HTTPServer
	DB         DB
	JIRA       JIRA
	SMTP       SMTP
	Access     Access
}

type HTTPServer struct {
	Address     string        `env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type DB struct {
	Path        string `env:"DB_PATH" env-default:"launchpad.db"`
	VersionFile string `env:"SCHEMA_VERSION_FILE" env-default:"launchpad.schema_version"`
}

// JIRA holds the issue-tracker credentials. All fields are optional: when
// the base URL or credentials are absent, ticket lookup runs in degraded
// mode instead of failing.
type JIRA struct {
	BaseURL  string `env:"JIRA_BASE_URL"`
	Username string `env:"JIRA_USERNAME"`
	APIToken string `env:"JIRA_API_TOKEN"`
}

// SMTP holds the notification sink settings. When Host is empty the sink
// is a logged no-op.
type SMTP struct {
	Host       string `env:"SMTP_HOST"`
	Port       int    `env:"SMTP_PORT" env-default:"587"`
	Username   string `env:"SMTP_USERNAME"`
	Password   string `env:"SMTP_PASSWORD"`
	From       string `env:"SMTP_FROM"`
	Recipients string `env:"NOTIFY_RECIPIENTS"` // comma-separated
}

// Access holds the identity-boundary settings. Requests arrive already
// authenticated by an external proxy that injects the user's email into
// IdentityHeader; that value is trusted verbatim.
type Access struct {
	IdentityHeader string `env:"IDENTITY_HEADER" env-default:"Cf-Access-Authenticated-User-Email"`
	AdminEmails    string `env:"ADMIN_EMAILS"` // comma-separated allow-list
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	cfg := &Config{}

	// .env is a local-development convenience; absence is not an error.
	_ = cleanenv.ReadConfig(".env", cfg)

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment configuration: %w", err)
	}

	return cfg, nil
}

// IsPrivileged reports whether email is on the admin allow-list.
// Comparison is an exact string match per entry.
func (a Access) IsPrivileged(email string) bool {
	if email == "" {
		return false
	}
	for _, admin := range strings.Split(a.AdminEmails, ",") {
		if strings.TrimSpace(admin) == email {
			return true
		}
	}
	return false
}

// RecipientList splits the comma-separated recipients, dropping empties.
func (s SMTP) RecipientList() []string {
	var recipients []string
	for _, r := range strings.Split(s.Recipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return recipients
}
