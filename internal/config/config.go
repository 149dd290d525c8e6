package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "atelierctl", "config.yml")
}

// Load reads the config from disk (or env). Returns a config with
// defaults if no file exists yet.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("store.data_dir", defaultDataDir())
	v.SetDefault("ui.theme", "")
	v.SetDefault("ui.no_color", false)
	v.SetDefault("ui.no_interactive", false)
	v.SetDefault("shop.access_code_env", "ATELIERCTL_ACCESS_CODE")

	v.SetEnvPrefix("ATELIERCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("ATELIERCTL_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine — defaults carry the app.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Resolve the access-code override from env (never stored in file).
	codeEnv := cfg.Shop.AccessCodeEnv
	if codeEnv == "" {
		codeEnv = "ATELIERCTL_ACCESS_CODE"
	}
	cfg.Shop.AccessOverride = os.Getenv(codeEnv)

	cfg.Store.DataDir = ExpandHome(cfg.Store.DataDir)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "atelierctl")
}
