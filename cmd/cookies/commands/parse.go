package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ncobase/cookies/cookie"
	"github.com/ncobase/cookies/logging/logger"
	"github.com/spf13/cobra"
)

type pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func newParseCommand(opts *globalOptions) *cobra.Command {
	var decoderName string

	cmd := &cobra.Command{
		Use:     "parse [header]",
		Aliases: []string{"p"},
		Short:   "Parse a Cookie header into name/value pairs",
		Long:    `Parse a Cookie or Set-Cookie header value and print its cookies as JSON. The header is read from stdin when omitted.`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			decoder, ok := cookie.DecoderByName(decoderName)
			if !ok {
				return fmt.Errorf("unknown decoder %q", decoderName)
			}

			header := ""
			if len(args) == 1 {
				header = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read header: %w", err)
				}
				header = strings.TrimRight(string(data), "\r\n")
			}

			cookies := cookie.Parse(header, decoder)
			logger.Debugf(cmd.Context(), "parsed %d cookie(s)", len(cookies))

			out := make([]pair, 0, len(cookies))
			for _, c := range cookies {
				out = append(out, pair{Name: c.Name(), Value: c.Value()})
			}
			return writeJSON(cmd, out)
		},
	}
	cmd.Flags().StringVar(&decoderName, "decoder", "uri", "value decoder: uri, base64 or raw")

	return cmd
}
