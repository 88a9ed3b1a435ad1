package log

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the optional log configuration file. Filters follow the
// zapfilter syntax, keyed on named loggers (e.g. "debug:session.* info:*").
type Config struct {
	DefaultLevel string `yaml:"defaultLevel"`
	Filters      string `yaml:"filters"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read log config: %w", err)
	}
	ret := &Config{DefaultLevel: "info"}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("could not parse log config: %w", err)
	}
	return ret, nil
}
