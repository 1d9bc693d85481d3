package cliconfig

import "os"

// ApplyEnvConfig applies UIREPLAY_* environment variables to cfg. Env
// values override the config file but lose to explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("dir", os.Getenv("UIREPLAY_DIR"), &cfg.Dir)
	s.setString("prefix", os.Getenv("UIREPLAY_PREFIX"), &cfg.Prefix)
	s.setString("format", os.Getenv("UIREPLAY_FORMAT"), &cfg.Format)
	s.setBoolFromString("postprocess", os.Getenv("UIREPLAY_POSTPROCESS"), &cfg.Postprocess)
	s.setBoolFromString("simplify", os.Getenv("UIREPLAY_SIMPLIFY"), &cfg.Simplify)
	s.setBoolFromString("debug", os.Getenv("UIREPLAY_DEBUG"), &cfg.Debug)
}
