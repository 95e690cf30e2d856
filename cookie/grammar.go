package cookie

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/http/httpguts"
)

// pairPattern matches one cookie-pair together with its surrounding OWS:
//
//	OWS name OWS "=" OWS ( quoted-string / token / "" ) OWS
//
// Group 1 is the name, group 2 the raw value (quotes included).
var pairPattern = regexp.MustCompile(
	`[ \t]*([0-9A-Za-z!#$%&'*+\-.^_|~\x60]+)[ \t]*=[ \t]*` +
		`("(?:[\x0b\x20\x21\x23-\x5b\x5d-\x7e\x{80}-\x{ff}]|\\[\x0b\x20-\x{ff}])*"|[\x21\x23-\x3a\x3c-\x5b\x5d-\x7e]+|)[ \t]*`,
)

// escapePattern matches a backslash escape inside a quoted value.
var escapePattern = regexp.MustCompile(`\\([\x0b\x20-\x{ff}])`)

// validName reports whether s is a non-empty HTTP token.
func validName(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, isNotToken) < 0
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

// validValue reports whether s may be held as a cookie value before encoding.
// Control characters are rejected; anything else printable is accepted and
// left to the encoder.
func validValue(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !validValueRune(r) {
			return false
		}
	}
	return true
}

func validValueRune(r rune) bool {
	switch {
	case r == '\t':
		return true
	case r >= 0x20 && r < 0x7f:
		return true
	case r >= 0xa0 && r != utf8.RuneError:
		return true
	}
	return false
}

// validOctets reports whether s consists of RFC 6265 cookie-octets only:
//
//	cookie-octet = %x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E
func validOctets(s string) bool {
	for i := 0; i < len(s); i++ {
		if !validOctet(s[i]) {
			return false
		}
	}
	return true
}

func validOctet(b byte) bool {
	return 0x20 < b && b < 0x7f && b != '"' && b != ',' && b != ';' && b != '\\'
}

// validAttributeValue reports whether s is safe as a Path or Domain value.
func validAttributeValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b >= 0x7f || b == ';' || b == ',' {
			return false
		}
	}
	return true
}

// unquote strips the surrounding double quotes of a quoted cookie value and
// resolves its backslash escapes.
func unquote(raw string) string {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return raw
	}
	raw = raw[1 : len(raw)-1]
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}
	return escapePattern.ReplaceAllString(raw, "$1")
}
