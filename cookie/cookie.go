package cookie

import (
	"strings"
)

// Cookie is a named cookie value with its attributes and the encoder used
// to put the value on the wire.
//
// A Cookie is not safe for concurrent mutation; finish configuring it before
// sharing it. The zero value is an unnamed cookie with no attributes and the
// default encoder; it serializes but signers reject it.
type Cookie struct {
	name    string
	value   string
	attrs   *Attributes
	encoder Encoder
}

// New validates name and value and builds a cookie with the given
// attributes. values may be nil.
func New(name, value string, values Values) (*Cookie, error) {
	c := &Cookie{encoder: DefaultEncoder}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetValue(value); err != nil {
		return nil, err
	}
	if err := c.SetAttributes(values); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the cookie name.
func (c *Cookie) Name() string { return c.name }

// Value returns the decoded cookie value.
func (c *Cookie) Value() string { return c.value }

// Attributes returns the attribute set. Setters on it validate in place.
func (c *Cookie) Attributes() *Attributes {
	if c.attrs == nil {
		c.attrs = &Attributes{owner: c.name}
	}
	return c.attrs
}

// Encoder returns the value encoder used by Serialize.
func (c *Cookie) Encoder() Encoder {
	if c.encoder == nil {
		return DefaultEncoder
	}
	return c.encoder
}

// SetName replaces the cookie name.
func (c *Cookie) SetName(name string) error {
	if !validName(name) {
		return ErrNameInvalid
	}
	c.name = name
	if c.attrs != nil {
		c.attrs.owner = name
	}
	return nil
}

// SetValue replaces the cookie value. The value is stored decoded; the
// encoder makes it wire safe on Serialize.
func (c *Cookie) SetValue(value string) error {
	if value != "" && !validValue(value) {
		return valueError(c.name)
	}
	c.value = value
	return nil
}

// SetAttributes replaces all attributes. On error the previous set is kept.
func (c *Cookie) SetAttributes(values Values) error {
	attrs, err := NewAttributes(c.name, values)
	if err != nil {
		return err
	}
	c.attrs = attrs
	return nil
}

// SetEncoder replaces the value encoder. A nil encoder restores the default.
func (c *Cookie) SetEncoder(enc Encoder) {
	if enc == nil {
		enc = DefaultEncoder
	}
	c.encoder = enc
}

// Clone returns a copy of c with its own attribute set.
func (c *Cookie) Clone() *Cookie {
	return &Cookie{
		name:    c.name,
		value:   c.value,
		attrs:   c.attrs.Clone(c.name),
		encoder: c.Encoder(),
	}
}

// WithValue returns a copy of c holding value instead of the current one.
// c is left untouched.
func (c *Cookie) WithValue(value string) (*Cookie, error) {
	if value != "" && !validValue(value) {
		return nil, valueError(c.name)
	}
	clone := c.Clone()
	clone.value = value
	return clone, nil
}

// Serialize returns the Set-Cookie header value for c. An unnamed zero
// Cookie is ErrNameInvalid.
func (c *Cookie) Serialize() (string, error) {
	if c.name == "" {
		return "", ErrNameInvalid
	}
	value := c.Encoder()(c.value)
	if !validOctets(value) {
		return "", outputError(c.name)
	}
	items := make([]string, 1, 1+int(attrCount))
	items[0] = c.name + "=" + value
	items = c.attrs.appendTo(items)
	return strings.Join(items, "; "), nil
}

// String implements fmt.Stringer. Use Serialize when writing headers.
func (c *Cookie) String() string {
	s, err := c.Serialize()
	if err != nil {
		return c.name + "=<" + err.Error() + ">"
	}
	return s
}
