package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"role-shuffler/model"
)

// Load reads the configuration from environment variables and the optional
// settings file. BOT_TOKEN is the only hard requirement; everything else has
// a default.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	logWebhookURL := os.Getenv("LOG_WEBHOOK_URL")
	if logWebhookURL == "" {
		log.Println("Warning: LOG_WEBHOOK_URL not set, webhook logging will be disabled")
	}

	v := viper.New()
	v.SetDefault("database_path", "./data/shuffler.db")
	v.SetDefault("cooldown_window", 5*time.Minute)
	v.SetDefault("confirm_timeout", 5*time.Minute)
	v.SetDefault("stale_scan_interval", time.Hour)

	v.SetConfigName("settings")
	v.AddConfigPath(".")
	v.AddConfigPath("./data")
	v.SetEnvPrefix("SHUFFLER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("Info: no settings file found, using defaults")
	}

	return &model.Config{
		BotToken:          token,
		LogWebhookURL:     logWebhookURL,
		DatabasePath:      v.GetString("database_path"),
		CooldownWindow:    v.GetDuration("cooldown_window"),
		ConfirmTimeout:    v.GetDuration("confirm_timeout"),
		StaleScanInterval: v.GetDuration("stale_scan_interval"),
	}, nil
}
