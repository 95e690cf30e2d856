package logger

import (
	"github.com/google/wire"
	"github.com/ncobase/cookies/logging/logger/config"
)

// ProviderSet is the wire provider set for the logger package
var ProviderSet = wire.NewSet(ProvideLogger)

// ProvideLogger configures the standard logger that the signer and the CLI
// commands write through, with secrets and signatures masked when
// desensitization is enabled. A nil cfg uses config.Default. The cleanup
// function closes the log file when output is "file".
func ProvideLogger(cfg *config.Config) (*Logger, func(), error) {
	cleanup, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return StdLogger(), cleanup, nil
}
