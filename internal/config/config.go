package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env             string
	Port            string
	DatabaseURL     string
	RedisURL        string
	TokenSecret     string
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
	SweepEnabled    bool
	SweepInterval   time.Duration
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL")
	if env == "test" && viper.GetString("DATABASE_URL_TEST") != "" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}

	limitMax := viper.GetInt("RATE_LIMIT_MAX")
	if limitMax <= 0 {
		limitMax = 100
	}
	windowSec := viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")
	if windowSec <= 0 {
		windowSec = 60
	}
	sweepSec := viper.GetInt("SWEEP_INTERVAL_SECONDS")
	if sweepSec <= 0 {
		sweepSec = 10
	}
	sweepEnabled := true
	if v := viper.GetString("SWEEP_ENABLED"); v != "" {
		sweepEnabled = strings.EqualFold(v, "true")
	}

	return &Config{
		Env:             env,
		Port:            port,
		DatabaseURL:     dbURL,
		RedisURL:        viper.GetString("REDIS_URL"),
		TokenSecret:     viper.GetString("TOKEN_SECRET"),
		AllowedOrigins:  splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		RateLimitMax:    limitMax,
		RateLimitWindow: time.Duration(windowSec) * time.Second,
		SweepEnabled:    sweepEnabled,
		SweepInterval:   time.Duration(sweepSec) * time.Second,
	}, nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
