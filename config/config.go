package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/ncobase/cookies/logging/logger"
	logcfg "github.com/ncobase/cookies/logging/logger/config"
	"github.com/ncobase/cookies/security/signer"
	"github.com/ncobase/cookies/validator"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: signer.algorithm is read from
// COOKIES_SIGNER_ALGORITHM.
const EnvPrefix = "COOKIES"

// ErrNoConfigFile is returned by Watch when no file was loaded.
var ErrNoConfigFile = errors.New("no config file in use")

var (
	config *Config
	mu     sync.RWMutex
)

// Config represents the configuration implementation.
type Config struct {
	AppName string         `json:"app_name" validate:"required"`
	RunMode string         `json:"run_mode" validate:"oneof=debug release test"`
	Logger  *logcfg.Config `json:"logger" validate:"required"`
	Cookie  *Cookie        `json:"cookie" validate:"required"`
	Signer  *signer.Config `json:"signer"`
	Viper   *viper.Viper   `json:"-" validate:"-"`
	path    string
}

// GetConfig returns the configuration loaded last.
func GetConfig() (*Config, error) {
	mu.RLock()
	defer mu.RUnlock()
	if config == nil {
		return nil, fmt.Errorf("config not loaded")
	}
	return config, nil
}

// LoadConfig loads the configuration from configPath. Without a path the
// file "config" is searched in /etc/cookies, $HOME/.cookies and the working
// directory; a missing file is not an error and leaves the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/cookies")
		v.AddConfigPath("$HOME/.cookies")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Logger:  logcfg.GetConfig(v),
		Cookie:  getCookieConfig(v),
		Signer:  getSignerConfig(v),
		Viper:   v,
		path:    configPath,
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	mu.Lock()
	config = cfg
	mu.Unlock()
	return cfg, nil
}

// Reload reloads the configuration from the file it was loaded from.
func Reload() (*Config, error) {
	current, err := GetConfig()
	if err != nil {
		return nil, err
	}

	next, err := LoadConfig(current.path)
	if err != nil {
		return nil, fmt.Errorf("failed to reload config: %w", err)
	}
	return next, nil
}

// Watch watches the configuration file and calls callback with the new
// configuration after each successful reload. A reload that fails keeps
// the previous configuration.
func (c *Config) Watch(callback func(*Config)) error {
	file := c.Viper.ConfigFileUsed()
	if file == "" {
		return ErrNoConfigFile
	}

	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		ctx, _ := logger.EnsureTraceID(context.Background())
		next, err := LoadConfig(file)
		if err != nil {
			logger.Errorf(ctx, "Error reloading config: %v", err)
			return
		}
		logger.Infof(ctx, "config reloaded after %s on %s", e.Op, e.Name)
		if callback != nil {
			callback(next)
		}
	})
	c.Viper.WatchConfig()
	return nil
}

// File returns the path of the config file in use, if any.
func (c *Config) File() string {
	return c.Viper.ConfigFileUsed()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "cookies")
	v.SetDefault("run_mode", "release")
	v.SetDefault("cookie.encoder", "uri")
}
