package codegen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration of multipartgen.
//
//	types: [CreatePost, UpdatePost]
//	output: post_multipart.go
//	tags: [integration]
//	time_layout: "2006-01-02"
type Config struct {
	Types      []string `yaml:"types"`
	Output     string   `yaml:"output"`
	Tags       []string `yaml:"tags"`
	TimeLayout string   `yaml:"time_layout"`
}

// LoadConfig loads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return &cfg, nil
}

// Options returns the analyzer options described by the config.
func (c *Config) Options() []Option {
	return []Option{
		WithBuildTags(c.Tags...),
		WithTimeLayout(c.TimeLayout),
	}
}
