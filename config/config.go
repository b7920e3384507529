package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App   App
		CORS  CORS
		Cache Cache
		HTTP  HTTP
		Form  Form
		Log   Log
		Pg    Pg
		Redis Redis
		JWT   JWT
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Timezone string `env:"APP_TIMEZONE" envDefault:"America/New_York"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	Cache struct {
		// Seconds. The towns list rarely changes, so this can be long.
		Duration int `env:"CACHE_DURATIONS" envDefault:"3600"`
	}

	// Form overrides the society's Google Form id, e.g. for a test copy.
	Form struct {
		ID string `env:"GFORM_ID"`
	}

	HTTP struct {
		Port string `env:"HTTP_PORT,required"`
	}

	Log struct {
		Level    string `env:"LOG_LEVEL" envDefault:"info"`
		SQLLevel string `env:"LOG_SQL_LEVEL" envDefault:"none"`
	}

	Pg struct {
		PoolMax     int    `env:"PG_POOL_MAX,required"`
		Host        string `env:"PG_HOST,required"`
		Port        int    `env:"PG_PORT,required"`
		User        string `env:"PG_USER"`
		Password    string `env:"PG_PASSWORD"`
		Dbname      string `env:"PG_DATABASE,required"`
		SSLMode     string `env:"PG_SSLMODE,required"`
		AutoMigrate bool   `env:"PG_AUTO_MIGRATE" envDefault:"false"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST,required"`
		Port     int    `env:"REDIS_PORT,required"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}

	JWT struct {
		Secret string `env:"JWT_SECRET,required"`
		Expiry string `env:"JWT_EXPIRY" envDefault:"7d"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}
