package commands

import (
	"context"
	"encoding/json"

	"github.com/ncobase/cookies/cmd/cookies/app"
	"github.com/ncobase/cookies/config"
	"github.com/ncobase/cookies/ctxutil"
	"github.com/ncobase/cookies/logging/logger"
	"github.com/ncobase/cookies/version"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	confPath string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "cookies",
		Short:         "Parse, serialize and sign HTTP cookies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, _ = ctxutil.EnsureTraceID(ctx)
			cmd.SetContext(ctxutil.SetCommand(ctx, cmd.Name()))
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.confPath, "conf", "", "config file (default is config.yaml in ., $HOME/.cookies or /etc/cookies)")

	rootCmd.AddCommand(
		newParseCommand(opts),
		newSerializeCommand(opts),
		newSignCommand(opts),
		newUnsignCommand(opts),
		newKeygenCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// setup loads the configuration and wires the application.
func (o *globalOptions) setup(cmd *cobra.Command) (*app.App, func(), error) {
	cfg, err := config.LoadConfig(o.confPath)
	if err != nil {
		return nil, nil, err
	}

	a, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.SetVersion(version.Version)
	logger.Debugf(cmd.Context(), "config loaded from %q", cfg.File())
	return a, cleanup, nil
}

// writeJSON prints v as indented JSON on the command's output.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
