package security

import (
	"github.com/google/wire"
	"github.com/ncobase/cookies/security/signer"
)

// ProviderSet is the wire provider set for the security package.
// It provides the cookie Signer.
//
// Usage:
//
//	wire.Build(
//	    config.ProviderSet,
//	    security.ProviderSet,
//	    // ... other providers
//	)
var ProviderSet = wire.NewSet(
	signer.ProviderSet,
)
