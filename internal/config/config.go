package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SeatHuman  = "human"
	SeatEngine = "engine"
)

var (
	ErrUnknownLogLevel   = errors.New("unknown log level")
	ErrUnknownSeat       = errors.New("unknown seat kind")
	ErrUnknownDifficulty = errors.New("unknown engine difficulty")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PlayerX  string `yaml:"player-x" env:"PLAYER_X" env-default:"human"`
	PlayerO  string `yaml:"player-o" env:"PLAYER_O" env-default:"engine"`
	Engine   Engine `yaml:"engine"`
}

type Engine struct {
	Difficulty string `yaml:"difficulty" env:"ENGINE_DIFFICULTY" env-default:"hard"`
	Parallel   bool   `yaml:"parallel" env:"ENGINE_PARALLEL" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file at path, falling back to environment variables and
// defaults when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	for _, seat := range []string{that.PlayerX, that.PlayerO} {
		if seat != SeatHuman && seat != SeatEngine {
			return fmt.Errorf("%w: %q", ErrUnknownSeat, seat)
		}
	}

	switch that.Engine.Difficulty {
	case "easy", "hard":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, that.Engine.Difficulty)
	}

	return nil
}
