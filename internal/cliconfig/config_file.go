package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config with TOML tags. Bools are pointers so that an
// absent key is distinguishable from an explicit false.
type fileConfig struct {
	Dir         string `toml:"dir"`
	Prefix      string `toml:"prefix"`
	Format      string `toml:"format"`
	Postprocess *bool  `toml:"postprocess"`
	Simplify    *bool  `toml:"simplify"`
	Debug       *bool  `toml:"debug"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.uireplay/config.toml when the user home
// directory is accessible, otherwise "".
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".uireplay", "config.toml")
	}
	return ""
}

// FileExists reports whether path names an existing file.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ApplyFileConfig applies file values to cfg, skipping explicitly set flags.
func ApplyFileConfig(cfg *Config, fc fileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)
	s.setString("dir", fc.Dir, &cfg.Dir)
	s.setString("prefix", fc.Prefix, &cfg.Prefix)
	s.setString("format", fc.Format, &cfg.Format)
	s.setBool("postprocess", fc.Postprocess, &cfg.Postprocess)
	s.setBool("simplify", fc.Simplify, &cfg.Simplify)
	s.setBool("debug", fc.Debug, &cfg.Debug)
}
