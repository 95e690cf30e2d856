package cookie

// Parse extracts the cookie-pairs of a Cookie or Set-Cookie header value.
//
// Pairs are scanned left to right; anything that does not look like
// name=value is skipped, and so is a pair whose decoded value is not a valid
// cookie value. An empty value counts only when the pair ends there, so a
// value made of bytes neither value form accepts drops the pair. When a name
// repeats, the first pair wins. decoder defaults to SafeDecode. Parse never
// fails: hostile input yields fewer cookies.
func Parse(header string, decoder Decoder) []*Cookie {
	if decoder == nil {
		decoder = DefaultDecoder
	}

	matches := pairPattern.FindAllStringSubmatchIndex(header, -1)
	cookies := make([]*Cookie, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		name, raw := header[m[2]:m[3]], header[m[4]:m[5]]
		if raw == "" && !atPairEnd(header, m[1]) {
			// the value bytes did not match either value form
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		c, err := New(name, decoder(unquote(raw)), nil)
		if err != nil {
			continue
		}
		seen[name] = struct{}{}
		cookies = append(cookies, c)
	}
	return cookies
}

// Lookup returns the first cookie named name in header.
func Lookup(header, name string, decoder Decoder) (*Cookie, bool) {
	for _, c := range Parse(header, decoder) {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// atPairEnd reports whether i is the end of header or the start of a ';'
// separator.
func atPairEnd(header string, i int) bool {
	return i >= len(header) || header[i] == ';'
}
