// Package config provides configuration management for skillery using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/skillery/internal/paths"
	"github.com/thoreinstein/skillery/internal/skill"
)

// AppName is the application name used for config file naming.
const AppName = "skillery"

// Config represents the top-level configuration structure.
//
// The category and data-level vocabularies live here so the normalizer,
// validator, and query layer receive them as injected configuration
// rather than reaching for package globals.
type Config struct {
	Version    int              `mapstructure:"version" yaml:"version"`
	SourceDir  string           `mapstructure:"source_dir" yaml:"source_dir"`
	OutputDir  string           `mapstructure:"output_dir" yaml:"output_dir"`
	Categories []skill.Category `mapstructure:"categories" yaml:"categories"`
	DataLevels []string         `mapstructure:"data_levels" yaml:"data_levels"`
}

// CategorySet returns the curated categories as a lookup set.
func (c *Config) CategorySet() skill.Categories {
	return skill.Categories(c.Categories)
}

// LevelSet returns the ordered data-level vocabulary.
func (c *Config) LevelSet() skill.DataLevels {
	levels := make(skill.DataLevels, len(c.DataLevels))
	for i, l := range c.DataLevels {
		levels[i] = skill.DataLevel(l)
	}
	return levels
}

// defaultCategories is the built-in curated category set. The Name field
// carries the localized display name, NameEn the English one.
var defaultCategories = []map[string]any{
	{"id": "writing", "name": "写作", "name_en": "Writing"},
	{"id": "coding", "name": "编程", "name_en": "Coding"},
	{"id": "research", "name": "研究", "name_en": "Research"},
	{"id": "data", "name": "数据分析", "name_en": "Data Analysis"},
	{"id": "automation", "name": "自动化", "name_en": "Automation"},
	{"id": "productivity", "name": "效率", "name_en": "Productivity"},
	{"id": "design", "name": "设计", "name_en": "Design"},
	{"id": "marketing", "name": "营销", "name_en": "Marketing"},
	{"id": "education", "name": "教育", "name_en": "Education"},
	{"id": "other", "name": "其他", "name_en": "Other"},
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.ConfigHome())

	// Environment variable support
	viper.SetEnvPrefix("SKILLERY")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("source_dir", "skills")
	viper.SetDefault("output_dir", paths.DataHome())
	viper.SetDefault("categories", defaultCategories)
	viper.SetDefault("data_levels", levelStrings(skill.DefaultDataLevels))
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func levelStrings(levels skill.DataLevels) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = string(l)
	}
	return out
}
