package commands

import (
	"fmt"
	"time"

	"github.com/ncobase/cookies/cmd/cookies/app"
	"github.com/ncobase/cookies/cookie"
	"github.com/spf13/cobra"
)

// attributeFlags are the cookie attribute flags shared by serialize and sign.
type attributeFlags struct {
	path     string
	domain   string
	maxAge   int
	expires  string
	secure   bool
	httpOnly bool
	sameSite string
	priority string
	encoder  string
}

func (f *attributeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "path", "", "Path attribute")
	cmd.Flags().StringVar(&f.domain, "domain", "", "Domain attribute")
	cmd.Flags().IntVar(&f.maxAge, "max-age", 0, "Max-Age attribute in seconds")
	cmd.Flags().StringVar(&f.expires, "expires", "", "Expires attribute (RFC 3339)")
	cmd.Flags().BoolVar(&f.secure, "secure", false, "Secure attribute")
	cmd.Flags().BoolVar(&f.httpOnly, "http-only", false, "HttpOnly attribute")
	cmd.Flags().StringVar(&f.sameSite, "same-site", "", "SameSite attribute: strict, lax or none")
	cmd.Flags().StringVar(&f.priority, "priority", "", "Priority attribute: low, medium or high")
	cmd.Flags().StringVar(&f.encoder, "encoder", "", "value encoder: uri, base64 or raw (default from config)")
}

// build creates a cookie from the configured defaults overridden by the
// flags that were given.
func (f *attributeFlags) build(cmd *cobra.Command, a *app.App, name, value string) (*cookie.Cookie, error) {
	values := a.Cookie.Values()
	changed := cmd.Flags().Changed

	if changed("path") {
		values[cookie.AttrPath] = f.path
	}
	if changed("domain") {
		values[cookie.AttrDomain] = f.domain
	}
	if changed("max-age") {
		values[cookie.AttrMaxAge] = f.maxAge
	}
	if changed("expires") {
		expires, err := time.Parse(time.RFC3339, f.expires)
		if err != nil {
			return nil, fmt.Errorf("invalid --expires: %w", err)
		}
		values[cookie.AttrExpires] = expires
	}
	if changed("secure") {
		values[cookie.AttrSecure] = f.secure
	}
	if changed("http-only") {
		values[cookie.AttrHTTPOnly] = f.httpOnly
	}
	if changed("same-site") {
		values[cookie.AttrSameSite] = f.sameSite
	}
	if changed("priority") {
		values[cookie.AttrPriority] = f.priority
	}

	c, err := cookie.New(name, value, values)
	if err != nil {
		return nil, err
	}

	encoderName := a.Cookie.Encoder
	if changed("encoder") {
		encoderName = f.encoder
	}
	encoder, ok := cookie.EncoderByName(encoderName)
	if !ok {
		return nil, fmt.Errorf("unknown encoder %q", encoderName)
	}
	c.SetEncoder(encoder)
	return c, nil
}

func newSerializeCommand(opts *globalOptions) *cobra.Command {
	flags := &attributeFlags{}

	cmd := &cobra.Command{
		Use:     "serialize <name> <value>",
		Aliases: []string{"s"},
		Short:   "Print a Set-Cookie header value",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := flags.build(cmd, a, args[0], args[1])
			if err != nil {
				return err
			}
			header, err := c.Serialize()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), header)
			return err
		},
	}
	flags.register(cmd)

	return cmd
}
