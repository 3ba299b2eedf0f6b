package internal

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the Vaultline configuration
type Config struct {
	// Backend API configuration
	API struct {
		URL     string        `mapstructure:"url"`     // Backend base URL
		Timeout time.Duration `mapstructure:"timeout"` // Per-request timeout
	} `mapstructure:"api"`

	// Session storage configuration
	Session struct {
		Path string `mapstructure:"path"` // Path to the sqlite session file
	} `mapstructure:"session"`

	// Directory for log files
	LogDir string `mapstructure:"log_dir"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// LoadConfig loads the configuration from various sources
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaultConfig(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Look for config next to the binary and under ~/.config/vaultline/
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Override with environment variables prefixed with VAULTLINE_
	v.SetEnvPrefix("VAULTLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("api.url", "http://localhost:3000")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("session.path", filepath.Join(DefaultConfigPath, "session.db"))
	v.SetDefault("log_dir", filepath.Join(DefaultConfigPath, "logs"))
	v.SetDefault("debug", false)
}

// DefaultConfigPath is where Vaultline keeps its config, session and logs.
var DefaultConfigPath = filepath.Join(os.Getenv("HOME"), ".config", "vaultline")
