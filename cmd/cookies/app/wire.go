//go:build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/ncobase/cookies/config"
	"github.com/ncobase/cookies/logging/logger"
	"github.com/ncobase/cookies/security"
	"github.com/ncobase/cookies/security/signer"
)

// InitializeApp wires the logger and cookie defaults from a loaded
// configuration. The cleanup function closes the log file, if any.
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		NewApp,
	))
}

// InitializeSigner creates a Signer from signer configuration.
func InitializeSigner(cfg *signer.Config) (*signer.Signer, error) {
	panic(wire.Build(
		security.ProviderSet,
	))
}
