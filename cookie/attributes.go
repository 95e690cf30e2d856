package cookie

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Attr identifies a cookie attribute. Attributes are always applied and
// serialized in the order of their declaration.
type Attr int

const (
	AttrExpires Attr = iota
	AttrPath
	AttrDomain
	AttrMaxAge
	AttrSecure
	AttrHTTPOnly
	AttrSameSite
	AttrPriority

	attrCount
)

var attrNames = [attrCount]struct{ key, wire string }{
	AttrExpires:  {"expires", "Expires"},
	AttrPath:     {"path", "Path"},
	AttrDomain:   {"domain", "Domain"},
	AttrMaxAge:   {"maxAge", "Max-Age"},
	AttrSecure:   {"secure", "Secure"},
	AttrHTTPOnly: {"httpOnly", "HttpOnly"},
	AttrSameSite: {"sameSite", "SameSite"},
	AttrPriority: {"priority", "Priority"},
}

// Valid reports whether a is one of the known attributes.
func (a Attr) Valid() bool {
	return a >= 0 && a < attrCount
}

// Key returns the record name of the attribute, e.g. "maxAge".
func (a Attr) Key() string {
	if !a.Valid() {
		return "attr(" + strconv.Itoa(int(a)) + ")"
	}
	return attrNames[a].key
}

// String returns the wire name of the attribute, e.g. "Max-Age".
func (a Attr) String() string {
	if !a.Valid() {
		return a.Key()
	}
	return attrNames[a].wire
}

// ParseAttr resolves a record name ("maxAge") or a wire name ("Max-Age"),
// ignoring case.
func ParseAttr(s string) (Attr, bool) {
	for a := Attr(0); a < attrCount; a++ {
		if strings.EqualFold(s, attrNames[a].key) || strings.EqualFold(s, attrNames[a].wire) {
			return a, true
		}
	}
	return 0, false
}

// SameSite is a normalized SameSite attribute value.
type SameSite string

const (
	SameSiteStrict SameSite = "Strict"
	SameSiteLax    SameSite = "Lax"
	SameSiteNone   SameSite = "None"
)

// Priority is a normalized Priority attribute value.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Values is a record of attribute values keyed by attribute. Nil entries are
// ignored.
type Values map[Attr]any

// Attributes holds the optional attributes of a cookie. Every value is
// validated when it is written.
type Attributes struct {
	owner string

	expires   time.Time
	path      string
	domain    string
	maxAge    int
	hasMaxAge bool
	secure    bool
	httpOnly  bool
	sameSite  SameSite
	priority  Priority
}

// validators is indexed by Attr. Each entry stores v when it is acceptable
// and reports whether it was.
var validators = [attrCount]func(*Attributes, any) bool{
	AttrExpires:  (*Attributes).putExpires,
	AttrPath:     (*Attributes).putPath,
	AttrDomain:   (*Attributes).putDomain,
	AttrMaxAge:   (*Attributes).putMaxAge,
	AttrSecure:   (*Attributes).putSecure,
	AttrHTTPOnly: (*Attributes).putHTTPOnly,
	AttrSameSite: (*Attributes).putSameSite,
	AttrPriority: (*Attributes).putPriority,
}

// NewAttributes builds an attribute set for the cookie named owner. The name
// is only used in error messages. Values are applied in attribute order and
// the first invalid one is returned.
func NewAttributes(owner string, values Values) (*Attributes, error) {
	a := &Attributes{owner: owner}
	for key := Attr(0); key < attrCount; key++ {
		v, ok := values[key]
		if !ok || isNil(v) {
			continue
		}
		if err := a.Set(key, v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Set validates v and stores it under key.
func (a *Attributes) Set(key Attr, v any) error {
	if !key.Valid() || isNil(v) || !validators[key](a, v) {
		return &AttributeError{Cookie: a.owner, Attr: key}
	}
	return nil
}

// Get returns the stored value of key, if any.
func (a *Attributes) Get(key Attr) (any, bool) {
	switch key {
	case AttrExpires:
		return a.Expires()
	case AttrPath:
		return a.Path()
	case AttrDomain:
		return a.Domain()
	case AttrMaxAge:
		return a.MaxAge()
	case AttrSecure:
		return a.secure, a.secure
	case AttrHTTPOnly:
		return a.httpOnly, a.httpOnly
	case AttrSameSite:
		return a.SameSite()
	case AttrPriority:
		return a.Priority()
	}
	return nil, false
}

// Values returns the stored attributes as a record suitable for
// NewAttributes.
func (a *Attributes) Values() Values {
	values := Values{}
	for key := Attr(0); key < attrCount; key++ {
		if v, ok := a.Get(key); ok {
			values[key] = v
		}
	}
	return values
}

// Clone returns a copy of the set owned by another cookie name. A nil set
// clones to an empty one.
func (a *Attributes) Clone(owner string) *Attributes {
	if a == nil {
		return &Attributes{owner: owner}
	}
	c := *a
	c.owner = owner
	return &c
}

// SetExpires sets the Expires attribute.
func (a *Attributes) SetExpires(t time.Time) error { return a.Set(AttrExpires, t) }

// SetPath sets the Path attribute. An empty path removes it.
func (a *Attributes) SetPath(path string) error { return a.Set(AttrPath, path) }

// SetDomain sets the Domain attribute. An empty domain removes it.
func (a *Attributes) SetDomain(domain string) error { return a.Set(AttrDomain, domain) }

// SetMaxAge sets the Max-Age attribute. Any integer or float kind is
// accepted, as well as a numeric string; the value is floored.
func (a *Attributes) SetMaxAge(v any) error { return a.Set(AttrMaxAge, v) }

// SetSecure sets the Secure flag. False is never stored.
func (a *Attributes) SetSecure(on bool) error { return a.Set(AttrSecure, on) }

// SetHTTPOnly sets the HttpOnly flag. False is never stored.
func (a *Attributes) SetHTTPOnly(on bool) error { return a.Set(AttrHTTPOnly, on) }

// SetSameSite sets the SameSite attribute from any casing of Strict, Lax or None.
func (a *Attributes) SetSameSite(v string) error { return a.Set(AttrSameSite, v) }

// SetPriority sets the Priority attribute from any casing of Low, Medium or High.
func (a *Attributes) SetPriority(v string) error { return a.Set(AttrPriority, v) }

// Expires returns the Expires attribute and whether it is set.
func (a *Attributes) Expires() (time.Time, bool) { return a.expires, !a.expires.IsZero() }

// Path returns the Path attribute and whether it is set.
func (a *Attributes) Path() (string, bool) { return a.path, a.path != "" }

// Domain returns the Domain attribute and whether it is set.
func (a *Attributes) Domain() (string, bool) { return a.domain, a.domain != "" }

// MaxAge returns the floored Max-Age and whether it is set. Zero is a valid
// set value.
func (a *Attributes) MaxAge() (int, bool) { return a.maxAge, a.hasMaxAge }

// Secure reports the Secure flag.
func (a *Attributes) Secure() bool { return a.secure }

// HTTPOnly reports the HttpOnly flag.
func (a *Attributes) HTTPOnly() bool { return a.httpOnly }

// SameSite returns the normalized SameSite value and whether it is set.
func (a *Attributes) SameSite() (SameSite, bool) { return a.sameSite, a.sameSite != "" }

// Priority returns the normalized Priority value and whether it is set.
func (a *Attributes) Priority() (Priority, bool) { return a.priority, a.priority != "" }

// appendTo appends the serialized attributes to items in attribute order.
func (a *Attributes) appendTo(items []string) []string {
	if a == nil {
		return items
	}
	if t, ok := a.Expires(); ok {
		items = append(items, "Expires="+t.UTC().Format(http.TimeFormat))
	}
	if a.path != "" {
		items = append(items, "Path="+a.path)
	}
	if a.domain != "" {
		items = append(items, "Domain="+a.domain)
	}
	if a.hasMaxAge {
		items = append(items, "Max-Age="+strconv.Itoa(a.maxAge))
	}
	if a.secure {
		items = append(items, "Secure")
	}
	if a.httpOnly {
		items = append(items, "HttpOnly")
	}
	if a.sameSite != "" {
		items = append(items, "SameSite="+string(a.sameSite))
	}
	if a.priority != "" {
		items = append(items, "Priority="+string(a.priority))
	}
	return items
}

func (a *Attributes) putExpires(v any) bool {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		t = *x
	default:
		return false
	}
	if t.IsZero() {
		return false
	}
	if y := t.UTC().Year(); y < 1 || y > 9999 {
		return false
	}
	a.expires = t
	return true
}

func (a *Attributes) putPath(v any) bool {
	s, ok := v.(string)
	if !ok || !validAttributeValue(s) {
		return false
	}
	a.path = s
	return true
}

func (a *Attributes) putDomain(v any) bool {
	s, ok := v.(string)
	if !ok || !validAttributeValue(s) {
		return false
	}
	a.domain = s
	return true
}

func (a *Attributes) putMaxAge(v any) bool {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	f = math.Floor(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return false
	}
	a.maxAge = int(f)
	a.hasMaxAge = true
	return true
}

func (a *Attributes) putSecure(v any) bool {
	on, ok := v.(bool)
	if !ok {
		return false
	}
	if on {
		a.secure = true
	}
	return true
}

func (a *Attributes) putHTTPOnly(v any) bool {
	on, ok := v.(bool)
	if !ok {
		return false
	}
	if on {
		a.httpOnly = true
	}
	return true
}

func (a *Attributes) putSameSite(v any) bool {
	s, ok := enumString[SameSite](v)
	if !ok {
		return false
	}
	switch x := SameSite(capitalize(s)); x {
	case SameSiteStrict, SameSiteLax, SameSiteNone:
		a.sameSite = x
		return true
	}
	return false
}

func (a *Attributes) putPriority(v any) bool {
	s, ok := enumString[Priority](v)
	if !ok {
		return false
	}
	switch x := Priority(capitalize(s)); x {
	case PriorityLow, PriorityMedium, PriorityHigh:
		a.priority = x
		return true
	}
	return false
}

// enumString accepts either a plain string or the enum type itself.
func enumString[T ~string](v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case T:
		return string(x), true
	}
	return "", false
}

// capitalize lowercases s and upper-cases its first letter.
func capitalize(s string) string {
	return cases.Title(language.Und).String(s)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}

func isNil(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *time.Time:
		return x == nil
	}
	return false
}
