package config

import (
	"log"

	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional env file and the process
// environment. Environment variables always take precedence over the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	setDefaults(v)

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "ridemate")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "ridemate")

	// Reference pricing: base 50 + 20 per km
	v.SetDefault("PRICING_BASE_FARE", 50.0)
	v.SetDefault("PRICING_PER_KM_RATE", 20.0)
	v.SetDefault("PRICING_CURRENCY", "BDT")

	v.SetDefault("MATCH_MAX_RADIUS_KM", 10.0)

	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Pricing config
	configs.Pricing.BaseFare = v.GetFloat64("PRICING_BASE_FARE")
	configs.Pricing.PerKmRate = v.GetFloat64("PRICING_PER_KM_RATE")
	configs.Pricing.Currency = v.GetString("PRICING_CURRENCY")

	// Match config
	configs.Match.MaxRadiusKm = v.GetFloat64("MATCH_MAX_RADIUS_KM")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
