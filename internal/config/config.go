package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTP            HTTP          `yaml:"http"`
	Log             Log           `yaml:"log"`
	Players         Players       `yaml:"players"`
	Telemetry       Telemetry     `yaml:"telemetry"`
	WS              WS            `yaml:"ws"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Players holds the names the registry starts with.
type Players struct {
	X string `yaml:"x" env:"PLAYER_X_NAME" env-default:"Player 1"`
	O string `yaml:"o" env:"PLAYER_O_NAME" env-default:"Player 2"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"hotseat-tictactoe"`
	Stdout      bool   `yaml:"stdout" env:"OTEL_STDOUT" env-default:"false"`
}

type WS struct {
	ReadBuffer  int `yaml:"read-buffer" env:"WS_READ_BUFFER" env-default:"1024"`
	WriteBuffer int `yaml:"write-buffer" env:"WS_WRITE_BUFFER" env-default:"1024"`
}

// Load reads the yaml file at path, then the environment. A missing file is
// not an error; defaults and the environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return config, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
