package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Map     MapConfig     `yaml:"map"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

type DatasetConfig struct {
	Path string `yaml:"path"`
}

type MapConfig struct {
	Zoom      int    `yaml:"zoom"`
	ColorLow  string `yaml:"color_low"`
	ColorHigh string `yaml:"color_high"`
}

type ScoringConfig struct {
	Weights ScoringWeights `yaml:"weights"`
}

type ScoringWeights struct {
	Household   float64 `yaml:"household"`
	Install     float64 `yaml:"install"`
	Retention   float64 `yaml:"retention"`
	MarketShare float64 `yaml:"market_share"`
	Speed       float64 `yaml:"speed"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Dataset: DatasetConfig{
			Path: "Songkhla_L2_with_Enhanced_Data.csv",
		},
		Map: MapConfig{
			Zoom:      9,
			ColorLow:  "red",
			ColorHigh: "green",
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				Household:   0.40,
				Install:     0.25,
				Retention:   0.20,
				MarketShare: 0.05,
				Speed:       0.10,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PMAP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("PMAP_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("PMAP_DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("PMAP_MAP_ZOOM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Map.Zoom = n
		}
	}
	if v := os.Getenv("PMAP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
