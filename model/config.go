package model

import "time"

// Config holds the application configuration.
type Config struct {
	BotToken          string
	LogWebhookURL     string
	DatabasePath      string
	CooldownWindow    time.Duration
	ConfirmTimeout    time.Duration
	StaleScanInterval time.Duration
}
