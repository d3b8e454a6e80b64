package config

import (
	"os"
	"strconv"
	"strings"
)

// Config содержит все переменные окружения сервиса.
type Config struct {
	Token       string // токен Telegram бота
	BotUsername string // username бота без @, для ссылок "поделиться"

	Storage     string // memory | postgres | redis
	PostgresDSN string

	Redis RedisConfig

	SMTP SMTPConfig
}

// RedisConfig содержит переменные окружения для подключения к Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SMTPConfig содержит переменные окружения для отправки почты сотрудникам.
// Пустой Host означает, что почта не настроена.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	StaffEmails    []string
	FeedbackEmails []string
}

// Load читает конфигурацию из окружения.
func Load() *Config {
	return &Config{
		Token:       os.Getenv("ZOOBOT_TOKEN"),
		BotUsername: os.Getenv("ZOOBOT_USERNAME"),

		Storage:     envOrDefault("ZOOBOT_STORAGE", "memory"),
		PostgresDSN: os.Getenv("ZOOBOT_POSTGRES_DSN"),

		Redis: RedisConfig{
			Addr:     os.Getenv("ZOOBOT_REDIS_ADDR"),
			Password: os.Getenv("ZOOBOT_REDIS_PASSWORD"),
			DB:       envInt("ZOOBOT_REDIS_DB", 0),
		},

		SMTP: SMTPConfig{
			Host:     os.Getenv("ZOOBOT_SMTP_HOST"),
			Port:     envInt("ZOOBOT_SMTP_PORT", 587),
			Username: os.Getenv("ZOOBOT_SMTP_USERNAME"),
			Password: os.Getenv("ZOOBOT_SMTP_PASSWORD"),
			From:     os.Getenv("ZOOBOT_SMTP_FROM"),

			StaffEmails:    envList("ZOOBOT_CONTACT_EMAILS"),
			FeedbackEmails: envList("ZOOBOT_FEEDBACK_EMAILS"),
		},
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

// envList разбирает список адресов, разделённых запятыми.
func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")

	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}
