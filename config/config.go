package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/yeremiapane/restaurant-ai/database"
	"github.com/yeremiapane/restaurant-ai/utils"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Seed     SeedConfig
	LogLevel string
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	LoginAttempts  int
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

type SessionConfig struct {
	JWTSecret string
	TTL       time.Duration
	OTPTTL    time.Duration
}

// SeedConfig overrides the built-in bootstrap credentials. File, when set, points to a
// yaml/json/toml file whose "restaurants" key replaces the built-in restaurant list.
type SeedConfig struct {
	SuperadminName     string
	SuperadminEmail    string
	SuperadminMobile   string
	SuperadminPassword string
	File               string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://127.0.0.1:5500")
	v.SetDefault("LOGIN_ATTEMPTS_PER_MINUTE", 5)

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "restaurant.sqlite?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate")
	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("DB_CONNECT_BACKOFF", "500ms")

	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("OTP_TTL", "5m")

	v.SetDefault("SUPERADMIN_NAME", "Platform Owner")
	v.SetDefault("SUPERADMIN_EMAIL", database.DefaultSuperadminEmail)
	v.SetDefault("SUPERADMIN_MOBILE", "+1234567890")
	v.SetDefault("SUPERADMIN_PASSWORD", database.DefaultSuperadminPassword)
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debugf(".env not loaded, using environment only: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			LoginAttempts:  v.GetInt("LOGIN_ATTEMPTS_PER_MINUTE"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("DB_DRIVER"),
			DSN:             v.GetString("DB_DSN"),
			ConnectAttempts: v.GetInt("DB_CONNECT_ATTEMPTS"),
			ConnectBackoff:  v.GetDuration("DB_CONNECT_BACKOFF"),
		},
		Session: SessionConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TTL:       v.GetDuration("SESSION_TTL"),
			OTPTTL:    v.GetDuration("OTP_TTL"),
		},
		Seed: SeedConfig{
			SuperadminName:     v.GetString("SUPERADMIN_NAME"),
			SuperadminEmail:    v.GetString("SUPERADMIN_EMAIL"),
			SuperadminMobile:   v.GetString("SUPERADMIN_MOBILE"),
			SuperadminPassword: v.GetString("SUPERADMIN_PASSWORD"),
			File:               v.GetString("SEED_FILE"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.DSN == "" {
		return errors.New("DB_DSN must not be empty")
	}
	if c.Database.ConnectAttempts < 1 {
		return fmt.Errorf("DB_CONNECT_ATTEMPTS must be at least 1, got %d", c.Database.ConnectAttempts)
	}
	if c.Database.ConnectBackoff < 0 {
		return errors.New("DB_CONNECT_BACKOFF must not be negative")
	}
	if c.Server.LoginAttempts < 1 {
		return fmt.Errorf("LOGIN_ATTEMPTS_PER_MINUTE must be at least 1, got %d", c.Server.LoginAttempts)
	}
	if c.Session.TTL <= 0 || c.Session.OTPTTL <= 0 {
		return errors.New("SESSION_TTL and OTP_TTL must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SeedData builds the seed handed to database.InitializeDatabase.
func (c *Config) SeedData() (database.Seed, error) {
	seed := database.DefaultSeed()
	seed.Superadmin = database.AccountSeed{
		FullName:     c.Seed.SuperadminName,
		Email:        c.Seed.SuperadminEmail,
		MobileNumber: c.Seed.SuperadminMobile,
		Password:     c.Seed.SuperadminPassword,
	}

	if c.Seed.File != "" {
		restaurants, err := loadRestaurantSeeds(c.Seed.File)
		if err != nil {
			return database.Seed{}, err
		}
		seed.Restaurants = restaurants
	}

	if err := seed.Validate(); err != nil {
		return database.Seed{}, err
	}
	return seed, nil
}

func loadRestaurantSeeds(path string) ([]database.RestaurantSeed, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var restaurants []database.RestaurantSeed
	if err := v.UnmarshalKey("restaurants", &restaurants); err != nil {
		return nil, fmt.Errorf("failed to parse restaurants in %s: %w", path, err)
	}
	if len(restaurants) == 0 {
		return nil, fmt.Errorf("seed file %s has no restaurants", path)
	}
	return restaurants, nil
}

// LogSummary prints the effective configuration without any secret values.
func (c *Config) LogSummary() {
	set := func(s string) string {
		if s != "" {
			return "SET"
		}
		return "NOT SET"
	}

	utils.InfoLogger.Printf("Configuration loaded:")
	utils.InfoLogger.Printf("- Server Port: %s", c.Server.Port)
	utils.InfoLogger.Printf("- Gin Mode: %s", c.Server.GinMode)
	utils.InfoLogger.Printf("- CORS Allowed Origins: %s", strings.Join(c.Server.AllowedOrigins, ", "))
	utils.InfoLogger.Printf("- Database Driver: %s", c.Database.Driver)
	utils.InfoLogger.Printf("- Database Connect Attempts: %d (backoff %s)", c.Database.ConnectAttempts, c.Database.ConnectBackoff)
	utils.InfoLogger.Printf("- JWT Secret: %s", set(c.Session.JWTSecret))
	utils.InfoLogger.Printf("- Superadmin Email: %s", c.Seed.SuperadminEmail)
	utils.InfoLogger.Printf("- Superadmin Password: %s", set(c.Seed.SuperadminPassword))
	if c.Seed.File != "" {
		utils.InfoLogger.Printf("- Seed File: %s", c.Seed.File)
	}
}
