package config

import (
	"time"

	"github.com/sirupsen/logrus"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv   AppEnv       `yaml:"app_env"`
		LogLevel logrus.Level `yaml:"log_level"`
		HTTP     HTTP         `yaml:"http"`
		Database Database     `yaml:"database"`
		Kafka    Kafka        `yaml:"kafka"`
		YouTube  YouTube      `yaml:"youtube"`
	}

	HTTP struct {
		Port int `yaml:"port"`
	}

	Database struct {
		Postgres   Postgres   `yaml:"postgres"`
		ClickHouse ClickHouse `yaml:"clickhouse"`
		Redis      Redis      `yaml:"redis"`
	}

	Postgres struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
	}

	ClickHouse struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
	}

	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		Database int    `yaml:"database"`
	}

	Kafka struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}

	YouTube struct {
		APIKey         string        `yaml:"api_key"`
		Region         string        `yaml:"region"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	}
)
