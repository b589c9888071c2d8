// Package config provides configuration management for jj-starship.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// SegmentConfig holds the per-model display settings: the prompt symbol
// and the six independent visibility toggles.
type SegmentConfig struct {
	Symbol          string `mapstructure:"symbol"`
	ShowPrefix      bool   `mapstructure:"show_prefix"`
	ShowName        bool   `mapstructure:"show_name"`
	ShowID          bool   `mapstructure:"show_id"`
	ShowStatus      bool   `mapstructure:"show_status"`
	ShowColor       bool   `mapstructure:"show_color"`
	ShowPrefixColor bool   `mapstructure:"show_prefix_color"`
}

// Config holds all configuration for jj-starship. It is fully resolved
// (file values, then flag overrides) before any rendering happens; the
// renderer never applies defaults of its own.
type Config struct {
	// TruncateName is the maximum bookmark/branch name length before an
	// ellipsis is appended; 0 means unlimited.
	TruncateName int `mapstructure:"truncate_name"`
	// IDLength is the number of change-id/commit-hash characters shown.
	IDLength int `mapstructure:"id_length"`
	// AncestorDepth bounds the ancestor bookmark search; 0 disables it.
	AncestorDepth int `mapstructure:"ancestor_depth"`
	// BookmarkLimit caps how many bookmarks are rendered; 0 means all.
	BookmarkLimit int `mapstructure:"bookmark_limit"`
	// StripBookmarkPrefix lists literal prefixes removed from bookmark
	// names before display, checked in order, first match wins.
	StripBookmarkPrefix []string `mapstructure:"strip_bookmark_prefix"`

	JJ  SegmentConfig `mapstructure:"jj"`
	Git SegmentConfig `mapstructure:"git"`
}

// Default symbols, Nerd Font glyphs matching the jj and git logos.
const (
	DefaultJJSymbol  = "\U000f15c6 "
	DefaultGitSymbol = " "
)

func defaultSegment(symbol string) SegmentConfig {
	return SegmentConfig{
		Symbol:          symbol,
		ShowPrefix:      true,
		ShowName:        true,
		ShowID:          true,
		ShowStatus:      true,
		ShowColor:       true,
		ShowPrefixColor: true,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TruncateName:  0,
		IDLength:      8,
		AncestorDepth: 10,
		BookmarkLimit: 0,
		JJ:            defaultSegment(DefaultJJSymbol),
		Git:           defaultSegment(DefaultGitSymbol),
	}
}

// Load reads the configuration file, falling back to defaults when none
// exists. A prompt helper runs on every shell redraw, so a missing file
// is normal and is never written back.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "jj-starship", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("truncate_name", defaults.TruncateName)
	v.SetDefault("id_length", defaults.IDLength)
	v.SetDefault("ancestor_depth", defaults.AncestorDepth)
	v.SetDefault("bookmark_limit", defaults.BookmarkLimit)
	v.SetDefault("strip_bookmark_prefix", []string{})

	for model, seg := range map[string]SegmentConfig{"jj": defaults.JJ, "git": defaults.Git} {
		v.SetDefault(model+".symbol", seg.Symbol)
		v.SetDefault(model+".show_prefix", seg.ShowPrefix)
		v.SetDefault(model+".show_name", seg.ShowName)
		v.SetDefault(model+".show_id", seg.ShowID)
		v.SetDefault(model+".show_status", seg.ShowStatus)
		v.SetDefault(model+".show_color", seg.ShowColor)
		v.SetDefault(model+".show_prefix_color", seg.ShowPrefixColor)
	}
}

// StripPrefix removes the first configured prefix that matches the given
// bookmark name. Prefixes are checked in configuration order; a name with
// no matching prefix is returned unchanged.
func (c *Config) StripPrefix(name string) string {
	for _, prefix := range c.StripBookmarkPrefix {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}

// Truncate shortens a name to the configured width, ending in a single
// ellipsis rune when anything was cut; the ellipsis counts toward the
// width, so truncated names occupy exactly TruncateName cells. The count
// is rune-based, not byte-based: bookmark names may contain multibyte
// characters.
func (c *Config) Truncate(name string) string {
	if c.TruncateName <= 0 {
		return name
	}
	runes := []rune(name)
	if len(runes) <= c.TruncateName {
		return name
	}
	return string(runes[:c.TruncateName-1]) + "…"
}
