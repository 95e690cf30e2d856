package commands

import (
	"fmt"
	"strings"

	"github.com/ncobase/cookies/nanoid"
	"github.com/spf13/cobra"
)

const defaultKeySize = 32

func newKeygenCommand() *cobra.Command {
	var (
		size     int
		alphabet string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random signing secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := nanoid.Secret(size, alphabet)
			if err != nil {
				return fmt.Errorf("failed to generate secret: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), secret)
			return err
		},
	}
	cmd.Flags().IntVar(&size, "size", defaultKeySize, "secret length in characters")
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "character set: "+strings.Join(nanoid.Alphabets(), ", "))

	return cmd
}
