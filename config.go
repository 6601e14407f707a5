package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/mjacb/go-transitnet/transit"
)

//**********************************************************
// config
//**********************************************************

type Config struct {
	Build struct {
		Source struct {
			OSM  string `yaml:"osm" validate:"required"`
			GTFS string `yaml:"gtfs" validate:"required"`
		} `yaml:"source"`
		// coordinate quantum for merging coincident intersections
		ConsolidatePrecision float64 `yaml:"consolidate-precision" validate:"gt=0"`
		// maximum stop-to-vertex link distance in coordinate units
		MaxLinkDistance float64 `yaml:"max-link-distance" validate:"gt=0"`
		// distance ceiling of the per-stop street trees
		StopTreeRange int32 `yaml:"stop-tree-range" validate:"gt=0"`
		Workers       int   `yaml:"workers" validate:"gte=1"`
	} `yaml:"build"`
	Output string `yaml:"output" validate:"required"`
}

func DefaultConfig() Config {
	config := Config{}
	config.Build.ConsolidatePrecision = 0.00001
	config.Build.MaxLinkDistance = 0.05
	config.Build.StopTreeRange = transit.DEFAULT_STOP_TREE_RANGE
	config.Build.Workers = 1
	config.Output = "./network"
	return config
}

func ReadConfig(file string) (Config, error) {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	validate := validator.New()
	if err := validate.Struct(&config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
