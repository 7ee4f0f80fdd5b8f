// Package config loads runtime settings from the environment. Every backing
// service is optional: with no Redis the cart lives in process memory, with
// no Postgres the catalog is served from the built-in sample data and the
// event log is disabled, with no NATS cart events stay local.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Address string

	Currency       string
	WhatsAppNumber string
	StoreEmail     string

	ContactMode     string
	ContactEndpoint string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN string
	NATSURL     string
}

func Load() Config {
	return Config{
		Address: ":" + getenv("PORT", "8080"),

		Currency:       getenv("CURRENCY", "usd"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", ""),
		StoreEmail:     getenv("STORE_EMAIL", ""),

		ContactMode:     getenv("CONTACT_MODE", "intercept"),
		ContactEndpoint: getenv("CONTACT_ENDPOINT", ""),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("REDIS_DB", 0),

		PostgresDSN: getenv("DATABASE_URL", ""),
		NATSURL:     getenv("NATS_URL", ""),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenv(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}
