package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/shuttleleague/go/internal/models"
	"github.com/mcdev12/shuttleleague/go/internal/rating"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Rating struct {
		EnabledAlgorithms []string `yaml:"enabled_algorithms"`
	} `yaml:"rating"`
	GameDay struct {
		// 0 seeds the group-size shuffle from the clock
		ShuffleSeed int64 `yaml:"shuffle_seed"`
	} `yaml:"gameday"`
}

func defaultConfig() *Config {
	var c Config
	c.Server.Port = 8080
	c.Server.AllowedOrigins = []string{"*"}
	c.Rating.EnabledAlgorithms = []string{string(models.RankingLogicModifiedElo)}
	return &c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads path over the defaults; a missing file keeps the defaults.
// PORT overrides server.port.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", path).Msg("config file not found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnvAsInt("PORT", config.Server.Port)
	if err := checkRatingAlgorithms(config); err != nil {
		return nil, err
	}
	return config, nil
}

// checkRatingAlgorithms fails startup when an enabled algorithm has no engine
func checkRatingAlgorithms(config *Config) error {
	if len(config.Rating.EnabledAlgorithms) == 0 {
		return errors.New("rating.enabled_algorithms must list at least one algorithm")
	}
	for _, name := range config.Rating.EnabledAlgorithms {
		if !rating.IsRegistered(models.RankingLogic(name)) {
			return fmt.Errorf("rating algorithm %q is not available (registered: %v)", name, rating.Registered())
		}
		log.Info().Str("algorithm", name).Msg("rating algorithm enabled")
	}
	return nil
}
