package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/ncobase/cookies/cookie"
	"github.com/ncobase/cookies/security/signer"
	sv "github.com/ncobase/cookies/validator"
)

func init() {
	rules := []struct {
		tag     string
		message string
		fn      validator.Func
	}{
		{"attribute_value", "The field '%s' must not contain control characters, ';' or ','.", attributeRule(cookie.AttrPath)},
		{"same_site", "The field '%s' must be one of Strict, Lax or None.", attributeRule(cookie.AttrSameSite)},
		{"priority", "The field '%s' must be one of Low, Medium or High.", attributeRule(cookie.AttrPriority)},
		{"algorithm", "The field '%s' must name a supported algorithm.", func(fl validator.FieldLevel) bool {
			return signer.Supported(fl.Field().String())
		}},
	}
	for _, r := range rules {
		if err := sv.Register(r.tag, r.message, r.fn); err != nil {
			panic(err)
		}
	}
}

// attributeRule validates a string field the way the cookie package
// validates key.
func attributeRule(key cookie.Attr) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := cookie.NewAttributes("", cookie.Values{key: fl.Field().String()})
		return err == nil
	}
}
