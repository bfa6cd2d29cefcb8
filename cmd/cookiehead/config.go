package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CanonicalNames bool   `yaml:"canonicalNames"`
	JSONPath       string `yaml:"jsonPath"`
	Pretty         bool   `yaml:"pretty"`
	LogLevel       string `yaml:"logLevel"`
	LogFile        string `yaml:"logFile"`
}

func getConfig(filename string) (Config, error) {
	var config Config
	configBytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	if err = yaml.Unmarshal(configBytes, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", filename, err)
	}
	return config, nil
}
