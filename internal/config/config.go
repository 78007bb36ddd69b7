package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	// Issuer display name shown on invoice headers. Opaque input, not
	// validated.
	SenderName string

	CORSOrigins []string

	DBType     string
	DBPath     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	SMTP SMTPConfig
	PDF  PDFConfig
}

// SMTPConfig carries mail relay credentials. Treated as opaque collaborator
// inputs; delivery is attempted once with no retry.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// PDFConfig controls the headless Chromium exporter.
type PDFConfig struct {
	// ExecPath overrides browser discovery when set.
	ExecPath string
	Timeout  time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "billcraft"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":3001"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		SenderName:  getenv("SENDER_NAME", ""),
		CORSOrigins: parseList(getenv("CORS_ORIGINS", "*")),
		DBType:      getenv("DATABASE_TYPE", "sqlite"),
		DBPath:      getenv("DATABASE_PATH", "invoice.db"),
		DBHost:      getenv("DATABASE_HOST", "localhost"),
		DBPort:      getenv("DATABASE_PORT", "5432"),
		DBName:      getenv("DATABASE_NAME", "billcraft"),
		DBUser:      getenv("DATABASE_USER", "postgres"),
		DBPassword:  getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:   getenv("DATABASE_SSLMODE", "disable"),
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenvInt("SMTP_PORT", 587),
			Username: getenv("SMTP_USERNAME", getenv("EMAIL_USER", "")),
			Password: getenv("SMTP_PASSWORD", getenv("EMAIL_PASS", "")),
			From:     getenv("SMTP_FROM", ""),
			Timeout:  getenvDuration("SMTP_TIMEOUT", 30*time.Second),
		},
		PDF: PDFConfig{
			ExecPath: getenv("PDF_EXEC_PATH", ""),
			Timeout:  getenvDuration("PDF_TIMEOUT", 45*time.Second),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
