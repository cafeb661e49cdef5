package config

import (
	"log"

	"groupmeet/models"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Coordinator login. The hash is a bcrypt hash of the coordinator password.
	CoordinatorEmail        string `mapstructure:"COORDINATOR_EMAIL"`
	CoordinatorPasswordHash string `mapstructure:"COORDINATOR_PASSWORD_HASH"`

	// Availability engine settings. "pointsample" classifies a grid cell by
	// its start instant only (legacy behavior); "fulloverlap" marks a cell
	// busy if any event overlaps any part of it.
	AvailabilityStrictness string `mapstructure:"AVAILABILITY_STRICTNESS"`

	// TTL for cached week availability, in seconds.
	AvailabilityCacheTTL int `mapstructure:"AVAILABILITY_CACHE_TTL"`

	// Coordinator's standing weekly unavailability, keyed by day code with
	// half-open busy ranges in minutes from midnight. Empty means the
	// compiled default table.
	PersonalPolicy map[string][]models.MinuteRange `mapstructure:"PERSONAL_POLICY"`

	// Backend health poll interval, in seconds.
	HealthCheckInterval int `mapstructure:"HEALTH_CHECK_INTERVAL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("COORDINATOR_EMAIL", "")
	viper.SetDefault("COORDINATOR_PASSWORD_HASH", "")
	viper.SetDefault("AVAILABILITY_STRICTNESS", "pointsample")
	viper.SetDefault("AVAILABILITY_CACHE_TTL", 300)
	viper.SetDefault("HEALTH_CHECK_INTERVAL", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// PersonalPolicy returns the coordinator policy from the config, falling
// back to the compiled default table when none is configured. Entries for
// unknown day codes are dropped.
func PersonalPolicy() models.AvailabilityPolicy {
	if len(AppConfig.PersonalPolicy) == 0 {
		return models.DefaultPersonalPolicy()
	}

	busy := make(map[models.DayCode][]models.MinuteRange, len(AppConfig.PersonalPolicy))
	for key, ranges := range AppConfig.PersonalPolicy {
		day := models.DayCode(key)
		if _, ok := models.DayNames[day]; !ok {
			log.Printf("ignoring personal policy entry for unknown day %q", key)
			continue
		}
		busy[day] = ranges
	}
	return models.AvailabilityPolicy{Busy: busy}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
