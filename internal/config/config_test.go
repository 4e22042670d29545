package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBaseConfig() *Config {
	return &Config{
		ServerPort: "8080",
		JWTSecret:  "secret",
		Storage: StorageConfig{
			Driver:   StorageLocal,
			LocalDir: "./uploads",
		},
		Image: ImageConfig{
			MaxUploadBytes: 10 << 20,
			MaxDimension:   1600,
		},
		Salon: SalonConfig{
			Timezone:   "UTC",
			Open:       "09:00",
			Close:      "18:00",
			ClosedDays: []int{0},
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	require.NoError(t, validBaseConfig().Validate())
}

func TestConfig_Validate_DefaultJWTSecretOnlyOutsideProduction(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWTSecret = defaultJWTSecret
	cfg.Env = "development"
	require.NoError(t, cfg.Validate())

	cfg.Env = "production"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.JWTSecret = "a-real-secret"
	require.NoError(t, cfg.Validate())
}

func TestLoad_ProductionWithoutJWTSecretFails(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestConfig_Validate_UnknownStorageDriver(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Storage.Driver = "ftp"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestConfig_Validate_S3RequiresBucket(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Storage.Driver = StorageS3
	cfg.Storage.Bucket = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BUCKET")
}

func TestConfig_Validate_OpeningHours(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Salon.Open = "18:00"
	cfg.Salon.Close = "09:00"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SALON_OPEN must be before SALON_CLOSE")

	cfg = validBaseConfig()
	cfg.Salon.Close = "late"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SALON_CLOSE")
}

func TestConfig_Validate_BadTimezoneAndClosedDay(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Salon.Timezone = "Mars/Olympus"
	cfg.Salon.ClosedDays = []int{7}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SALON_TIMEZONE")
	assert.Contains(t, err.Error(), "SALON_CLOSED_DAYS")
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("STORAGE_PUBLIC_URL", "https://cdn.example.com/")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("SALON_CLOSED_DAYS", "0, 1")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://headz.app")
	t.Setenv("IMAGE_TRANSCODE", "false")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, StorageS3, cfg.Storage.Driver)
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.PublicURL)
	assert.Equal(t, int64(2<<20), cfg.Image.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []int{0, 1}, cfg.Salon.ClosedDays)
	assert.Equal(t, []string{"http://localhost:3000", "https://headz.app"}, cfg.AllowedOrigins)
	assert.False(t, cfg.Image.Transcode)
}

func TestLoad_InvalidClosedDayIsReported(t *testing.T) {
	t.Setenv("SALON_CLOSED_DAYS", "sunday")

	cfg := Load()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SALON_CLOSED_DAYS")
}
