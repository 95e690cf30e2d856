package cookie

import (
	"net/http"
)

var sameSiteModes = map[SameSite]http.SameSite{
	SameSiteStrict: http.SameSiteStrictMode,
	SameSiteLax:    http.SameSiteLaxMode,
	SameSiteNone:   http.SameSiteNoneMode,
}

// HTTPCookie converts c to a *http.Cookie for use with http.SetCookie. The
// value is run through the encoder. net/http has no Priority field, so that
// attribute is not carried over.
func (c *Cookie) HTTPCookie() (*http.Cookie, error) {
	if c.name == "" {
		return nil, ErrNameInvalid
	}
	value := c.Encoder()(c.value)
	if !validOctets(value) {
		return nil, outputError(c.name)
	}

	a := c.attrs
	if a == nil {
		a = &Attributes{}
	}
	hc := &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     a.path,
		Domain:   a.domain,
		Expires:  a.expires,
		Secure:   a.secure,
		HttpOnly: a.httpOnly,
	}
	if a.hasMaxAge {
		// http.Cookie uses 0 for "unset" and any negative for Max-Age=0
		if a.maxAge > 0 {
			hc.MaxAge = a.maxAge
		} else {
			hc.MaxAge = -1
		}
	}
	if mode, ok := sameSiteModes[a.sameSite]; ok {
		hc.SameSite = mode
	}
	return hc, nil
}

// FromHTTP builds a Cookie from a *http.Cookie, decoding its value with
// decoder (SafeDecode when nil). The result uses the default encoder; a nil
// hc is reported as ErrNameInvalid.
func FromHTTP(hc *http.Cookie, decoder Decoder) (*Cookie, error) {
	if hc == nil {
		return nil, ErrNameInvalid
	}
	if decoder == nil {
		decoder = DefaultDecoder
	}

	values := Values{
		AttrPath:     hc.Path,
		AttrDomain:   hc.Domain,
		AttrSecure:   hc.Secure,
		AttrHTTPOnly: hc.HttpOnly,
	}
	if !hc.Expires.IsZero() {
		values[AttrExpires] = hc.Expires
	}
	switch {
	case hc.MaxAge > 0:
		values[AttrMaxAge] = hc.MaxAge
	case hc.MaxAge < 0:
		values[AttrMaxAge] = 0
	}
	for name, mode := range sameSiteModes {
		if hc.SameSite == mode {
			values[AttrSameSite] = string(name)
		}
	}

	return New(hc.Name, decoder(hc.Value), values)
}
