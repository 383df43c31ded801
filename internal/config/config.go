package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Kernel  KernelConfig  `mapstructure:"kernel"`
	Runtime RuntimeConfig `mapstructure:"runtime"`
	Install InstallConfig `mapstructure:"install"`
}

type KernelConfig struct {
	ConnectionFile string `mapstructure:"connection_file"`
}

type RuntimeConfig struct {
	Interpreter string       `mapstructure:"interpreter"`
	Docker      DockerConfig `mapstructure:"docker"`
}

type DockerConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Container string `mapstructure:"container"`
}

type InstallConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Pip     ChannelConfig `mapstructure:"pip"`
	Conda   CondaConfig   `mapstructure:"conda"`
}

type ChannelConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type CondaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Binary  string `mapstructure:"binary"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Install.Timeout == 0 {
		config.Install.Timeout = 10 * time.Minute
	}
	if config.Install.Conda.Binary == "" {
		config.Install.Conda.Binary = "conda"
	}
	if !config.Install.Pip.Enabled && !config.Install.Conda.Enabled {
		// An all-disabled install section means the file simply omitted it.
		config.Install.Pip.Enabled = true
		config.Install.Conda.Enabled = true
	}
}
