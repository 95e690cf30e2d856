package cookie

import (
	"encoding/base64"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Encoder turns a cookie value into its wire form. It must be pure.
type Encoder func(value string) string

// Decoder turns a wire value back into a cookie value. It must be pure and
// must not fail: on bad input it returns the input unchanged.
type Decoder func(value string) string

var (
	// DefaultEncoder percent-encodes values.
	DefaultEncoder Encoder = EncodeComponent
	// DefaultDecoder percent-decodes values.
	DefaultDecoder Decoder = SafeDecode
)

// EncodeComponent percent-encodes every byte outside A-Z a-z 0-9 - _ . ~,
// encoding spaces as %20.
func EncodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// SafeDecode percent-decodes value when it contains an escape. Malformed
// escapes and sequences that do not decode to UTF-8 leave value unchanged.
// A '+' is kept as is.
func SafeDecode(value string) string {
	if strings.IndexByte(value, '%') < 0 {
		return value
	}
	decoded, err := url.PathUnescape(value)
	if err != nil || !utf8.ValidString(decoded) {
		return value
	}
	return decoded
}

// Base64Encoder encodes values with standard base64.
func Base64Encoder(value string) string {
	return base64.StdEncoding.EncodeToString([]byte(value))
}

// Base64Decoder decodes standard base64 values, with or without padding.
func Base64Decoder(value string) string {
	enc := base64.StdEncoding
	if len(value)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	decoded, err := enc.DecodeString(value)
	if err != nil {
		return value
	}
	return string(decoded)
}

// RawEncoder leaves values untouched; Serialize still rejects output that is
// not made of cookie-octets.
func RawEncoder(value string) string { return value }

// RawDecoder leaves values untouched.
func RawDecoder(value string) string { return value }

var (
	encoders = map[string]Encoder{
		"uri":    EncodeComponent,
		"base64": Base64Encoder,
		"raw":    RawEncoder,
	}
	decoders = map[string]Decoder{
		"uri":    SafeDecode,
		"base64": Base64Decoder,
		"raw":    RawDecoder,
	}
)

// EncoderByName returns the built-in encoder called name: uri, base64 or
// raw. An empty name selects uri.
func EncoderByName(name string) (Encoder, bool) {
	if name == "" {
		return DefaultEncoder, true
	}
	enc, ok := encoders[strings.ToLower(name)]
	return enc, ok
}

// DecoderByName is the decoding counterpart of EncoderByName.
func DecoderByName(name string) (Decoder, bool) {
	if name == "" {
		return DefaultDecoder, true
	}
	dec, ok := decoders[strings.ToLower(name)]
	return dec, ok
}
