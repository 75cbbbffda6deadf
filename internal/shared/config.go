package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	ClipboardTTL   time.Duration
	CityA          string
	CityB          string
	Currency       string
	RateLimitRPS   int
	RequestTimeout time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric setting")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		ClipboardTTL:   time.Duration(atoi("CLIPBOARD_TTL_SECONDS", 3600)) * time.Second,
		CityA:          env("CITY_A_NAME", "Makkah"),
		CityB:          env("CITY_B_NAME", "Madinah"),
		Currency:       env("CURRENCY_SYMBOL", "£"),
		RateLimitRPS:   atoi("RATE_LIMIT_RPS", 20),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
	}
	if c.CityA == c.CityB {
		log.Warn().Str("city", c.CityA).Msg("CITY_A_NAME and CITY_B_NAME are identical")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
