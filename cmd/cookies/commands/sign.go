package commands

import (
	"fmt"

	"github.com/ncobase/cookies/cmd/cookies/app"
	"github.com/ncobase/cookies/config"
	"github.com/ncobase/cookies/cookie"
	"github.com/ncobase/cookies/logging/logger"
	"github.com/ncobase/cookies/security/signer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// signerFlags override the signer section of the configuration.
type signerFlags struct {
	secrets   []string
	algorithm string
}

func (f *signerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.secrets, "secret", nil, "signing secret, repeat to accept older secrets (first one signs)")
	cmd.Flags().StringVar(&f.algorithm, "algorithm", "", "HMAC algorithm (default from config, else sha256)")
}

func (f *signerFlags) signer(cmd *cobra.Command, a *app.App) (*signer.Signer, error) {
	base := config.ProvideSignerConfig(a.Config)
	sc := &signer.Config{
		Secrets:   base.Secrets,
		Algorithm: base.Algorithm,
	}
	if cmd.Flags().Changed("secret") {
		sc.Secrets = f.secrets
	}
	if cmd.Flags().Changed("algorithm") {
		sc.Algorithm = f.algorithm
	}
	if len(sc.Secrets) == 0 {
		return nil, fmt.Errorf("no secret given: use --secret or set signer.secrets in the config")
	}
	return app.InitializeSigner(sc)
}

func newSignCommand(opts *globalOptions) *cobra.Command {
	attrs := &attributeFlags{}
	keys := &signerFlags{}

	cmd := &cobra.Command{
		Use:   "sign <name> <value>",
		Short: "Sign a cookie value and print the Set-Cookie header value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := keys.signer(cmd, a)
			if err != nil {
				return err
			}
			c, err := attrs.build(cmd, a, args[0], args[1])
			if err != nil {
				return err
			}
			signed, err := s.Sign(c)
			if err != nil {
				return err
			}

			logger.EntryWithFields(cmd.Context(), logrus.Fields{
				"cookie":    signed.Name(),
				"algorithm": s.Algorithm(),
				"signature": signed.Value(),
			}).Debug("cookie signed")

			header, err := signed.Serialize()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), header)
			return err
		},
	}
	attrs.register(cmd)
	keys.register(cmd)

	return cmd
}

type unsignResult struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Valid bool   `json:"valid"`
	Renew bool   `json:"renew"`
}

func newUnsignCommand(opts *globalOptions) *cobra.Command {
	keys := &signerFlags{}
	var decoderName string

	cmd := &cobra.Command{
		Use:   "unsign <name> <value>",
		Short: "Verify a signed cookie value",
		Long:  `Verify a signed cookie value as it appears on the wire. The value is decoded first, then checked against every secret; the first secret signs, the others only verify.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := keys.signer(cmd, a)
			if err != nil {
				return err
			}
			decoder, ok := cookie.DecoderByName(decoderName)
			if !ok {
				return fmt.Errorf("unknown decoder %q", decoderName)
			}
			c, err := cookie.New(args[0], decoder(args[1]), nil)
			if err != nil {
				return err
			}

			result, err := s.Unsign(c)
			if err != nil {
				return err
			}
			switch {
			case !result.Valid:
				logger.Warnf(cmd.Context(), "cookie %q failed verification", c.Name())
			case result.Renew:
				logger.Infof(cmd.Context(), "cookie %q was signed with an older secret and should be renewed", c.Name())
			}

			return writeJSON(cmd, unsignResult{
				Name:  result.Name(),
				Value: result.Value(),
				Valid: result.Valid,
				Renew: result.Renew,
			})
		},
	}
	keys.register(cmd)
	cmd.Flags().StringVar(&decoderName, "decoder", "uri", "value decoder: uri, base64 or raw")

	return cmd
}
