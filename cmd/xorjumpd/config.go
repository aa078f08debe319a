package main

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sot-tech/xorjump/pkg/conf"
)

// Config represents the configuration used for Server start.
type Config struct {
	MetricsAddr string         `yaml:"metrics_addr"`
	Frontend    conf.MapConfig `yaml:"frontend"`
}

// QuickConfig is the simple configuration for quick start without
// config file: local frontend with defaults, no metrics.
var QuickConfig = &Config{
	Frontend: conf.MapConfig{},
}

// ParseConfigFile returns a new Config given the path to a YAML
// configuration file.
//
// It supports relative and absolute paths and environment variables.
func ParseConfigFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("no config path specified")
	}

	f, err := os.Open(os.ExpandEnv(path))
	if err == nil {
		defer f.Close()
		cfgFile := new(Config)
		err = yaml.NewDecoder(f).Decode(cfgFile)
		return cfgFile, err
	}
	return nil, err
}
