// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// SessionConfig provides settings for verifying identity-provider session tokens.
type SessionConfig interface {
	GetSessionJWTSecret() string
}

// DirectoryConfig provides settings for the identity directory client.
type DirectoryConfig interface {
	GetDirectoryAPIURL() string
	GetDirectoryAPIKey() string
	GetDirectoryTimeout() time.Duration
}

// TenantURLConfig provides settings for tenant URL construction.
type TenantURLConfig interface {
	IsDevelopment() bool
	GetRootDomain() string
	GetDashboardPath() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// SchedulerConfig provides settings for the asynq scheduler and worker.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// PaymentsConfig provides settings for the payment-status side channel.
type PaymentsConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetPaymentWebhookSecret() string
	GetPaymentStatusTTL() time.Duration
	GetPaymentPendingExpiry() time.Duration
}

// EmailConfig provides settings for SMTP notification email.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetBillingAlertEmail() string
}

// PhoneConfig provides the default region for phone normalization.
type PhoneConfig interface {
	GetPhoneDefaultRegion() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	RootDomain           string
	DashboardPath        string
	DatabaseURL          string
	SessionJWTSecret     string
	DirectoryAPIURL      string
	DirectoryAPIKey      string
	DirectoryTimeout     time.Duration
	RedisURL             string
	RedisTLSInsecure     bool
	AsynqQueueName       string
	AsynqConcurrency     int
	PaymentWebhookSecret string
	PaymentStatusTTL     time.Duration
	PaymentPendingExpiry time.Duration
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	EmailEnabled         bool
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	EmailFromName        string
	EmailFromAddress     string
	BillingAlertEmail    string
	PhoneDefaultRegion   string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// SessionConfig implementation
func (c *Config) GetSessionJWTSecret() string { return c.SessionJWTSecret }

// DirectoryConfig implementation
func (c *Config) GetDirectoryAPIURL() string        { return c.DirectoryAPIURL }
func (c *Config) GetDirectoryAPIKey() string        { return c.DirectoryAPIKey }
func (c *Config) GetDirectoryTimeout() time.Duration { return c.DirectoryTimeout }

// TenantURLConfig implementation
func (c *Config) IsDevelopment() bool      { return strings.EqualFold(c.Env, "development") }
func (c *Config) GetRootDomain() string    { return c.RootDomain }
func (c *Config) GetDashboardPath() string { return c.DashboardPath }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string      { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// PaymentsConfig implementation
func (c *Config) GetPaymentWebhookSecret() string        { return c.PaymentWebhookSecret }
func (c *Config) GetPaymentStatusTTL() time.Duration     { return c.PaymentStatusTTL }
func (c *Config) GetPaymentPendingExpiry() time.Duration { return c.PaymentPendingExpiry }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool        { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string          { return c.SMTPHost }
func (c *Config) GetSMTPPort() int             { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string      { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string      { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string     { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string  { return c.EmailFromAddress }
func (c *Config) GetBillingAlertEmail() string { return c.BillingAlertEmail }

// PhoneConfig implementation
func (c *Config) GetPhoneDefaultRegion() string { return c.PhoneDefaultRegion }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		RootDomain:           getEnv("ROOT_DOMAIN", "localhost:3000"),
		DashboardPath:        getEnv("TENANT_DASHBOARD_PATH", "/dashboard"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		SessionJWTSecret:     getEnv("SESSION_JWT_SECRET", ""),
		DirectoryAPIURL:      getEnv("DIRECTORY_API_URL", ""),
		DirectoryAPIKey:      getEnv("DIRECTORY_API_KEY", ""),
		DirectoryTimeout:     mustDuration(getEnv("DIRECTORY_TIMEOUT", "10s")),
		RedisURL:             getEnv("REDIS_URL", ""),
		RedisTLSInsecure:     strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:       getEnv("ASYNQ_QUEUE_NAME", "default"),
		AsynqConcurrency:     mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		PaymentWebhookSecret: getEnv("PAYMENT_WEBHOOK_SECRET", ""),
		PaymentStatusTTL:     mustDuration(getEnv("PAYMENT_STATUS_TTL", "720h")),
		PaymentPendingExpiry: mustDuration(getEnv("PAYMENT_PENDING_EXPIRY", "1h")),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		EmailEnabled:         emailEnabled && smtpHost != "",
		SMTPHost:             smtpHost,
		SMTPPort:             mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:         getEnv("SMTP_USERNAME", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		EmailFromName:        getEnv("EMAIL_FROM_NAME", "FlowLedger"),
		EmailFromAddress:     getEnv("EMAIL_FROM_ADDRESS", ""),
		BillingAlertEmail:    getEnv("BILLING_ALERT_EMAIL", ""),
		PhoneDefaultRegion:   getEnv("PHONE_DEFAULT_REGION", "TZ"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SessionJWTSecret == "" {
		return nil, fmt.Errorf("SESSION_JWT_SECRET is required")
	}
	if cfg.DirectoryAPIURL == "" || cfg.DirectoryAPIKey == "" {
		return nil, fmt.Errorf("DIRECTORY_API_URL and DIRECTORY_API_KEY are required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	if !cfg.IsDevelopment() && cfg.RootDomain == "" {
		return nil, fmt.Errorf("ROOT_DOMAIN is required in production")
	}
	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
