package config

import (
	"fmt"

	"github.com/spf13/viper"
)

func LoadConfig(filename string) (*Config, error) {
	viper.SetConfigFile(filename)
	viper.SetConfigType("yaml")
	var config Config
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read the file %w", err)
	}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error reading the config file %w", err)
	}
	applyDefaults(&config)
	return &config, nil
}

func GetDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.ImportDir == "" {
		config.ImportDir = "Import"
	}
	if config.ExportDir == "" {
		config.ExportDir = "Export"
	}
	if config.Stoplist == "" {
		config.Stoplist = "stoplist.txt"
	}
	if config.Extractor.Suffix == "" {
		config.Extractor.Suffix = ".html"
	}
	if config.Weighting.Suffix == "" {
		config.Weighting.Suffix = ".txt"
	}
	if config.Weighting.OutputExt == "" {
		config.Weighting.OutputExt = ".wts"
	}
}
