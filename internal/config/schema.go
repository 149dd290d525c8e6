package config

// Config is the top-level atelierctl configuration.
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	UI    UIConfig    `mapstructure:"ui"`
	Shop  ShopConfig  `mapstructure:"shop"`
}

// StoreConfig holds local storage settings.
type StoreConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme         string `mapstructure:"theme"` // "", "light" or "dark"
	NoColor       bool   `mapstructure:"no_color"`
	NoInteractive bool   `mapstructure:"no_interactive"`
}

// ShopConfig holds shop-level settings.
type ShopConfig struct {
	AccessCodeEnv  string `mapstructure:"access_code_env"`
	AccessOverride string `mapstructure:"-"` // resolved at runtime, never written
}

// EffectiveTheme returns the configured theme if valid, otherwise "".
func (u *UIConfig) EffectiveTheme() string {
	switch u.Theme {
	case "light", "dark":
		return u.Theme
	}
	return ""
}
