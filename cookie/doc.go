// Package cookie models an HTTP cookie as a validated value object, parses
// cookies out of Cookie and Set-Cookie header values and serializes them back
// to wire-correct Set-Cookie strings.
//
// # Building cookies
//
// Name and value are validated when they are set; attributes are validated
// when they are written:
//
//	c, err := cookie.New("session", "abc", cookie.Values{
//	    cookie.AttrPath:     "/",
//	    cookie.AttrMaxAge:   3600,
//	    cookie.AttrSecure:   true,
//	    cookie.AttrHTTPOnly: true,
//	    cookie.AttrSameSite: "lax",
//	})
//
// Attributes are applied and serialized in a fixed order: Expires, Path,
// Domain, Max-Age, Secure, HttpOnly, SameSite, Priority. SameSite and
// Priority accept any casing and are stored normalized ("lax" becomes "Lax").
//
// # Serializing
//
//	header, err := c.Serialize()
//	// session=abc; Path=/; Max-Age=3600; Secure; HttpOnly; SameSite=Lax
//
// The value is passed through the cookie's Encoder (percent-encoding by
// default). Serialize fails with ErrOutputInvalid when the encoder produces
// anything but RFC 6265 cookie-octets.
//
// # Parsing
//
//	cookies := cookie.Parse(r.Header.Get("Cookie"), nil)
//
// Parse is lenient: malformed pairs are skipped, quoted values are unquoted
// and unescaped, values are percent-decoded when they contain an escape, and
// the first pair of a given name wins.
//
// # Errors
//
// Validation failures are reported with ErrNameInvalid, ErrValueInvalid,
// ErrOutputInvalid and *AttributeError (which matches ErrAttributeInvalid):
//
//	var attrErr *cookie.AttributeError
//	if errors.As(err, &attrErr) {
//	    fmt.Println(attrErr.Cookie, attrErr.Attr.Key())
//	}
package cookie
