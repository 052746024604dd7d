package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration shared by the API server and the function host
type Config struct {
	Port    string
	GinMode string

	DB DBConfig

	JWTSecret  string
	AppPin     string
	AppPinHash string

	StorageDriver   string
	PDFBucket       string
	ImageBucket     string
	LogoObject      string
	LogoFallbackURL string
	PublicBaseURL   string

	WebhookURL     string
	FormProfile    string
	City           string
	LegacyOverflow bool
	CORSOrigins    []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the postgres connection string
func (d DBConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

const devJWTSecret = "default_super_secret_key"

// GetEnv reads an environment variable or returns fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// Load reads envFile (when present) and then the process environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			slog.Info("No env file loaded, using process environment", "file", envFile)
		}
	}

	legacy, err := strconv.ParseBool(GetEnv("PDF_LEGACY_OVERFLOW", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid PDF_LEGACY_OVERFLOW: %w", err)
	}

	cfg := &Config{
		Port:    GetEnv("PORT", "8080"),
		GinMode: GetEnv("GIN_MODE", "debug"),
		DB: DBConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "5432"),
			User:     GetEnv("DB_USER", "postgres"),
			Password: GetEnv("DB_PASSWORD", "postgres"),
			Name:     GetEnv("DB_NAME", "postgres"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:       GetEnv("JWT_SECRET", ""),
		AppPin:          GetEnv("APP_PIN", ""),
		AppPinHash:      GetEnv("APP_PIN_HASH", ""),
		StorageDriver:   GetEnv("STORAGE_DRIVER", "gcs"),
		PDFBucket:       GetEnv("PDF_BUCKET", "requisicoes_pdfs"),
		ImageBucket:     GetEnv("IMAGE_BUCKET", "imagem"),
		LogoObject:      GetEnv("LOGO_OBJECT", "tropical.jpg"),
		LogoFallbackURL: GetEnv("LOGO_FALLBACK_URL", ""),
		PublicBaseURL:   GetEnv("STORAGE_PUBLIC_BASE_URL", "https://storage.googleapis.com"),
		WebhookURL:      GetEnv("WEBHOOK_URL", ""),
		FormProfile:     GetEnv("FORM_PROFILE", ""),
		City:            GetEnv("PDF_CITY", ""),
		LegacyOverflow:  legacy,
		CORSOrigins:     splitList(GetEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
	}

	if cfg.JWTSecret == "" {
		if cfg.GinMode == "release" {
			return nil, errors.New("JWT_SECRET environment variable is required in release mode")
		}
		cfg.JWTSecret = devJWTSecret // development fallback only
	}
	switch cfg.StorageDriver {
	case "gcs", "memory":
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
