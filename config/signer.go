package config

import (
	"github.com/ncobase/cookies/security/signer"
	"github.com/spf13/viper"
)

// getSignerConfig returns the signer config, or nil when the section is absent.
func getSignerConfig(v *viper.Viper) *signer.Config {
	if !v.IsSet("signer") && !v.IsSet("signer.secrets") && !v.IsSet("signer.algorithm") {
		return nil
	}
	return &signer.Config{
		Secrets:   v.GetStringSlice("signer.secrets"),
		Algorithm: getStringOrDefault(v, "signer.algorithm", signer.DefaultAlgorithm),
	}
}
