package config

import (
	"github.com/google/wire"
	logcfg "github.com/ncobase/cookies/logging/logger/config"
	"github.com/ncobase/cookies/security/signer"
)

// ProviderSet is the wire provider set for the config package.
// It extracts sub-configurations from *Config for other modules to use.
//
// Usage:
//
//	wire.Build(
//	    config.ProviderSet,
//	    // ... other providers
//	)
//
// Available configurations:
//   - *logcfg.Config: Logger configuration
//   - *Cookie: Default cookie attributes
//   - *signer.Config: Signer secrets and algorithm
var ProviderSet = wire.NewSet(
	ProvideLoggerConfig,
	ProvideCookieConfig,
	ProvideSignerConfig,
)

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *logcfg.Config {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}

// ProvideCookieConfig provides the default cookie attributes.
func ProvideCookieConfig(cfg *Config) *Cookie {
	if cfg == nil {
		return nil
	}
	return cfg.Cookie
}

// ProvideSignerConfig provides the signer configuration. It is never nil;
// a missing section yields an empty secret list.
func ProvideSignerConfig(cfg *Config) *signer.Config {
	if cfg == nil || cfg.Signer == nil {
		return &signer.Config{Algorithm: signer.DefaultAlgorithm}
	}
	return cfg.Signer
}
