package config

import (
	"github.com/ncobase/cookies/cookie"
	"github.com/spf13/viper"
)

// Cookie holds the default attributes applied to serialized cookies.
type Cookie struct {
	Path     string `json:"path" validate:"omitempty,attribute_value"`
	Domain   string `json:"domain" validate:"omitempty,attribute_value"`
	MaxAge   *int   `json:"max_age"`
	Secure   bool   `json:"secure"`
	HTTPOnly bool   `json:"http_only"`
	SameSite string `json:"same_site" validate:"omitempty,same_site"`
	Priority string `json:"priority" validate:"omitempty,priority"`
	Encoder  string `json:"encoder" validate:"omitempty,oneof=uri base64 raw"`
}

// getCookieConfig returns the cookie defaults.
func getCookieConfig(v *viper.Viper) *Cookie {
	c := &Cookie{
		Path:     v.GetString("cookie.path"),
		Domain:   v.GetString("cookie.domain"),
		Secure:   v.GetBool("cookie.secure"),
		HTTPOnly: v.GetBool("cookie.http_only"),
		SameSite: v.GetString("cookie.same_site"),
		Priority: v.GetString("cookie.priority"),
		Encoder:  v.GetString("cookie.encoder"),
	}
	if v.IsSet("cookie.max_age") {
		maxAge := v.GetInt("cookie.max_age")
		c.MaxAge = &maxAge
	}
	return c
}

// Values returns the defaults as cookie attribute values.
func (c *Cookie) Values() cookie.Values {
	values := cookie.Values{}
	if c.Path != "" {
		values[cookie.AttrPath] = c.Path
	}
	if c.Domain != "" {
		values[cookie.AttrDomain] = c.Domain
	}
	if c.MaxAge != nil {
		values[cookie.AttrMaxAge] = *c.MaxAge
	}
	if c.Secure {
		values[cookie.AttrSecure] = true
	}
	if c.HTTPOnly {
		values[cookie.AttrHTTPOnly] = true
	}
	if c.SameSite != "" {
		values[cookie.AttrSameSite] = c.SameSite
	}
	if c.Priority != "" {
		values[cookie.AttrPriority] = c.Priority
	}
	return values
}
