package config

import "github.com/spf13/viper"

// Config carries everything main needs to wire the app together.
type Config struct {
	AppPort          string
	StoreAPIURL      string
	RabbitMQURL      string
	LogLevel         string
	LogJSON          bool
	LocalAPI         bool
	ActivityFeedSize int
}

// Load reads configuration from environment variables with sensible
// defaults. No config file is required.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORE_API_URL", "https://fakestoreapi.com")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_JSON", false)
	viper.SetDefault("LOCAL_API", false)
	viper.SetDefault("ACTIVITY_FEED_SIZE", 20)
	viper.AutomaticEnv()

	return &Config{
		AppPort:          viper.GetString("APP_PORT"),
		StoreAPIURL:      viper.GetString("STORE_API_URL"),
		RabbitMQURL:      viper.GetString("RABBITMQ_URL"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		LogJSON:          viper.GetBool("LOG_JSON"),
		LocalAPI:         viper.GetBool("LOCAL_API"),
		ActivityFeedSize: viper.GetInt("ACTIVITY_FEED_SIZE"),
	}
}
