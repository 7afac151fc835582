package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	StripeSecretKey               string `mapstructure:"STRIPE_SECRET_KEY"`
	StripePublishableKey          string `mapstructure:"STRIPE_PUBLISHABLE_KEY"`
	AdminSecret                   string `mapstructure:"ADMIN_SECRET"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	EnableCORS                    bool   `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "funwalk.db")

	viper.BindEnv("STRIPE_SECRET_KEY")
	viper.BindEnv("STRIPE_PUBLISHABLE_KEY")
	viper.BindEnv("ADMIN_SECRET")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
