package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config.yaml"

// Load reads the YAML config file (CONFIG_PATH or ./config.yaml) and
// applies env-var overrides for secrets so they stay out of the file.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "config: failed to read %s", path)
		}
		// no file: env-only configuration
	} else if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: failed to parse %s", path)
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.AppEnv = AppEnv(v)
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		cfg.Database.Postgres.Password = v
	}
	if v := os.Getenv("CLICKHOUSE_PASSWORD"); v != "" {
		cfg.Database.ClickHouse.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Database.Redis.Password = v
	}
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		cfg.YouTube.APIKey = v
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		AppEnv:   LocalEnv,
		LogLevel: logrus.InfoLevel,
		HTTP:     HTTP{Port: 8080},
		Database: Database{
			Postgres:   Postgres{Host: "localhost", Port: 5432, Username: "karaoke", Database: "karaoke"},
			ClickHouse: ClickHouse{Host: "localhost", Port: 9000, Username: "default", Database: "karaoke"},
			Redis:      Redis{Host: "localhost", Port: 6379},
		},
		Kafka: Kafka{Host: "localhost", Port: 9092},
		YouTube: YouTube{
			Region:         "BR",
			RequestTimeout: 10 * time.Second,
		},
	}
}
