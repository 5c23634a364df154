package config

import "os"

// Config holds the runtime settings. Everything comes from the
// environment with sensible defaults; an empty MetricsAddr disables the
// metrics listener and an empty LogFile keeps logs on stdout only.
type Config struct {
	ServiceName string
	Env         string
	MetricsAddr string
	LogFile     string
}

func Load() Config {
	return Config{
		ServiceName: getenvDefault("SERVICE_NAME", "checkout"),
		Env:         getenvDefault("ENV", "dev"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
		LogFile:     os.Getenv("LOG_FILE"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
