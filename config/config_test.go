package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-ai/database"
	"github.com/yeremiapane/restaurant-ai/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger("warn")
	os.Exit(m.Run())
}

// clearEnv blanks every key LoadConfig reads; viper ignores empty variables.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "DB_DRIVER", "DB_DSN", "DB_CONNECT_ATTEMPTS",
		"DB_CONNECT_BACKOFF", "JWT_SECRET", "SESSION_TTL", "OTP_TTL", "SUPERADMIN_NAME",
		"SUPERADMIN_EMAIL", "SUPERADMIN_MOBILE", "SUPERADMIN_PASSWORD", "SEED_FILE",
		"CORS_ALLOWED_ORIGINS", "LOGIN_ATTEMPTS_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Contains(t, cfg.Database.DSN, "_foreign_keys=on")
		assert.Contains(t, cfg.Database.DSN, "_txlock=immediate")
		assert.Equal(t, 5, cfg.Database.ConnectAttempts)
		assert.Equal(t, 500*time.Millisecond, cfg.Database.ConnectBackoff)
		assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
		assert.Equal(t, 5*time.Minute, cfg.Session.OTPTTL)
		assert.Equal(t, "owner@restaurantai.com", cfg.Seed.SuperadminEmail)
		assert.Equal(t, "superadmin2025", cfg.Seed.SuperadminPassword)
		assert.Equal(t, []string{"http://127.0.0.1:5500"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, 5, cfg.Server.LoginAttempts)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/restaurant?parseTime=true")
		t.Setenv("DB_CONNECT_ATTEMPTS", "3")
		t.Setenv("DB_CONNECT_BACKOFF", "2s")
		t.Setenv("SUPERADMIN_EMAIL", "boss@example.com")
		t.Setenv("SUPERADMIN_PASSWORD", "s3cret")
		t.Setenv("PORT", "9090")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, 3, cfg.Database.ConnectAttempts)
		assert.Equal(t, 2*time.Second, cfg.Database.ConnectBackoff)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "boss@example.com", cfg.Seed.SuperadminEmail)
		assert.Equal(t, "s3cret", cfg.Seed.SuperadminPassword)
	})

	t.Run("rejects zero connect attempts", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_CONNECT_ATTEMPTS", "0")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestSeedData(t *testing.T) {
	t.Run("built-in restaurants with configured superadmin", func(t *testing.T) {
		cfg := &Config{Seed: SeedConfig{
			SuperadminName:     "Owner",
			SuperadminEmail:    "owner@example.com",
			SuperadminMobile:   "+1",
			SuperadminPassword: "pw",
		}}

		seed, err := cfg.SeedData()
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", seed.Superadmin.Email)
		assert.Equal(t, database.DefaultSeed().Restaurants, seed.Restaurants)
	})

	t.Run("restaurants from a seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		content := `
restaurants:
  - login_id: TC001
    password: taco123
    name: Taco Corner
    cuisine: Mexican
    rating: 4.2
    menu:
      - name: Al Pastor
        category: Tacos
        price: 3.5
        dietary: gluten-free
        chef_special: true
      - name: Horchata
        category: Drinks
        price: 2
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg := &Config{Seed: SeedConfig{
			SuperadminName:     "Owner",
			SuperadminEmail:    "owner@example.com",
			SuperadminPassword: "pw",
			File:               path,
		}}

		seed, err := cfg.SeedData()
		require.NoError(t, err)
		require.Len(t, seed.Restaurants, 1)

		r := seed.Restaurants[0]
		assert.Equal(t, "TC001", r.LoginID)
		assert.Equal(t, "Taco Corner", r.Name)
		assert.InDelta(t, 4.2, r.Rating, 0.0001)
		require.Len(t, r.Menu, 2)
		assert.Equal(t, "Al Pastor", r.Menu[0].Name)
		assert.True(t, r.Menu[0].ChefSpecial)
		assert.InDelta(t, 2.0, r.Menu[1].Price, 0.0001)
	})

	t.Run("missing seed file", func(t *testing.T) {
		cfg := &Config{Seed: SeedConfig{
			SuperadminName:     "Owner",
			SuperadminEmail:    "owner@example.com",
			SuperadminPassword: "pw",
			File:               filepath.Join(t.TempDir(), "nope.yaml"),
		}}

		_, err := cfg.SeedData()
		assert.Error(t, err)
	})

	t.Run("empty superadmin password", func(t *testing.T) {
		cfg := &Config{Seed: SeedConfig{SuperadminName: "Owner", SuperadminEmail: "owner@example.com"}}

		_, err := cfg.SeedData()
		assert.ErrorIs(t, err, database.ErrInvalidSeed)
	})
}
