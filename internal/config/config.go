// README: Config loader with env defaults for HTTP, CORS, and AI settings.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	CORS struct {
		AllowedOrigins []string
	}
	AI struct {
		GeminiKey      string
		Model          string
		TimeoutSeconds int
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("LAZYTRIP_HTTP_ADDR", ":8080")
	cfg.CORS.AllowedOrigins = strings.Split(envOrDefault("LAZYTRIP_CORS_ORIGINS", "*"), ",")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("LAZYTRIP_AI_MODEL", "gemini-2.0-flash")
	cfg.AI.TimeoutSeconds = envOrDefaultInt("LAZYTRIP_AI_TIMEOUT", 60)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
