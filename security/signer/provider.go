package signer

import (
	"github.com/google/wire"
)

// Config represents signer configuration for Wire injection.
type Config struct {
	Secrets   []string `json:"secrets" yaml:"secrets" validate:"dive,required"`
	Algorithm string   `json:"algorithm" yaml:"algorithm" validate:"omitempty,algorithm"`
}

// ProviderSet is the wire provider set for the signer package.
//
// Usage:
//
//	wire.Build(
//	    signer.ProviderSet,
//	    // ... other providers
//	)
var ProviderSet = wire.NewSet(ProvideSigner)

// ProvideSigner creates a Signer from configuration.
// An empty algorithm selects DefaultAlgorithm.
func ProvideSigner(cfg *Config) (*Signer, error) {
	if cfg == nil {
		return nil, ErrSecretInvalid
	}
	return New(cfg.Secrets, cfg.Algorithm)
}
