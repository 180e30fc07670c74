package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Admin    AdminConfig    `yaml:"admin"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type AppConfig struct {
	Env    string `yaml:"env"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Secret string `yaml:"secret"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type AdminConfig struct {
	// NotifyEmail receives the booking notification emails.
	NotifyEmail string `yaml:"notify_email"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// Load builds the configuration from defaults, an optional config.yaml and
// environment variables, in that order. A .env file is read first if present.
// The result is treated as immutable after startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Env:    "development",
			Host:   "",
			Port:   5000,
			Secret: "change-me-in-production",
		},
		Database: DatabaseConfig{
			Path: "./kangundhi.db",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Admin: AdminConfig{
			NotifyEmail: "admin@kangundhi.com",
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
	}

	// Load from YAML if exists
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.App.Env = env
	}
	if port := os.Getenv("APP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.App.Port = p
		}
	}
	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		cfg.App.Secret = secret
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		// Accept both plain paths and sqlite:///path URLs
		cfg.Database.Path = strings.TrimPrefix(dbURL, "sqlite:///")
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		cfg.Admin.NotifyEmail = email
	}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTP.Host = host
	}
	if port := os.Getenv("SMTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if user := os.Getenv("SMTP_USER"); user != "" {
		cfg.SMTP.Username = user
	}
	if pass := os.Getenv("SMTP_PASSWORD"); pass != "" {
		cfg.SMTP.Password = pass
	}
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		cfg.SMTP.From = from
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
