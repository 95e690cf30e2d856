package cookie

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	c, err := New("bar", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "bar", c.Name())

	require.NoError(t, c.SetName("foo"))
	assert.Equal(t, "foo", c.Name())

	for _, bad := range []string{"", "\n", "a b", "a;b", "a=b", `"a"`, "é"} {
		_, err := New(bad, "", nil)
		assert.ErrorIs(t, err, ErrNameInvalid, "%q", bad)
	}

	assert.ErrorIs(t, c.SetName(""), ErrNameInvalid)
	assert.Equal(t, "foo", c.Name(), "a rejected name leaves the old one")
}

func TestNewValue(t *testing.T) {
	c, err := New("foo", "bar", nil)
	require.NoError(t, err)
	assert.Equal(t, "bar", c.Value())

	require.NoError(t, c.SetValue(` ",;/`))
	assert.Equal(t, ` ",;/`, c.Value())

	_, err = New("foo", "\n", nil)
	assert.ErrorIs(t, err, ErrValueInvalid)
	assert.Contains(t, err.Error(), `"foo"`)

	_, err = New("foo", "a\x00b", nil)
	assert.ErrorIs(t, err, ErrValueInvalid)

	_, err = New("foo", "\xff", nil)
	assert.ErrorIs(t, err, ErrValueInvalid)
}

func TestSetAttributes(t *testing.T) {
	values := Values{AttrSecure: true, AttrHTTPOnly: true}

	c, err := New("foo", "bar", values)
	require.NoError(t, err)
	assert.Equal(t, values, c.Attributes().Values())

	require.NoError(t, c.SetAttributes(Values{AttrPath: "/"}))
	assert.Equal(t, Values{AttrPath: "/"}, c.Attributes().Values(), "attributes are replaced, not merged")

	err = c.SetAttributes(Values{AttrPath: "/\n"})
	assert.ErrorIs(t, err, ErrAttributeInvalid)
	assert.Equal(t, Values{AttrPath: "/"}, c.Attributes().Values(), "a rejected set leaves the old one")

	_, err = New("foo", "bar", Values{AttrSameSite: "maybe"})
	assert.EqualError(t, err, `cookie: "foo" sameSite option is invalid`)
}

func TestRenameUpdatesAttributeErrors(t *testing.T) {
	c, err := New("foo", "bar", nil)
	require.NoError(t, err)
	require.NoError(t, c.SetName("baz"))

	var attrErr *AttributeError
	require.True(t, errors.As(c.Attributes().SetPath("\x01"), &attrErr))
	assert.Equal(t, "baz", attrErr.Cookie)
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name    string
		cookie  func() (*Cookie, error)
		want    string
		wantErr error
	}{
		{
			name:   "default encoder",
			cookie: func() (*Cookie, error) { return New("foo", "bar?", nil) },
			want:   "foo=bar%3F",
		},
		{
			name:   "empty value",
			cookie: func() (*Cookie, error) { return New("foo", "", nil) },
			want:   "foo=",
		},
		{
			name: "attributes",
			cookie: func() (*Cookie, error) {
				return New("foo", "bar", Values{
					AttrMaxAge:   1000,
					AttrSecure:   true,
					AttrHTTPOnly: true,
					AttrPriority: "Medium",
				})
			},
			want: "foo=bar; Max-Age=1000; Secure; HttpOnly; Priority=Medium",
		},
		{
			name: "expires in UTC",
			cookie: func() (*Cookie, error) {
				return New("foo", "bar", Values{
					AttrExpires:  time.Date(2000, time.December, 24, 10, 30, 59, 900*int(time.Millisecond), time.UTC),
					AttrPath:     "example.com",
					AttrMaxAge:   1000,
					AttrSecure:   true,
					AttrHTTPOnly: true,
					AttrPriority: "Medium",
				})
			},
			want: "foo=bar; Expires=Sun, 24 Dec 2000 10:30:59 GMT; Path=example.com; Max-Age=1000; Secure; HttpOnly; Priority=Medium",
		},
		{
			name: "expires in another zone",
			cookie: func() (*Cookie, error) {
				return New("foo", "bar", Values{
					AttrExpires: time.Date(2000, time.December, 24, 12, 30, 59, 0, time.FixedZone("EET", 2*60*60)),
				})
			},
			want: "foo=bar; Expires=Sun, 24 Dec 2000 10:30:59 GMT",
		},
		{
			name: "all attributes in wire order",
			cookie: func() (*Cookie, error) {
				return New("id", "42", Values{
					AttrPriority: "high",
					AttrSameSite: "none",
					AttrHTTPOnly: true,
					AttrSecure:   true,
					AttrMaxAge:   0,
					AttrDomain:   "example.com",
					AttrPath:     "/",
				})
			},
			want: "id=42; Path=/; Domain=example.com; Max-Age=0; Secure; HttpOnly; SameSite=None; Priority=High",
		},
		{
			name: "custom encoder",
			cookie: func() (*Cookie, error) {
				c, err := New("foo", "bar", nil)
				if err == nil {
					c.SetEncoder(Base64Encoder)
				}
				return c, err
			},
			want: "foo=YmFy",
		},
		{
			name: "unsafe encoder output",
			cookie: func() (*Cookie, error) {
				c, err := New("foo", "bar", nil)
				if err == nil {
					c.SetEncoder(func(v string) string { return v + "+ \n" })
				}
				return c, err
			},
			wantErr: ErrOutputInvalid,
		},
		{
			name: "raw encoder with separators",
			cookie: func() (*Cookie, error) {
				c, err := New("foo", "a;b", nil)
				if err == nil {
					c.SetEncoder(RawEncoder)
				}
				return c, err
			},
			wantErr: ErrOutputInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.cookie()
			require.NoError(t, err)

			got, err := c.Serialize()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), `"foo"`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestSetEncoderNilRestoresDefault(t *testing.T) {
	c, err := New("foo", "a b", nil)
	require.NoError(t, err)
	c.SetEncoder(RawEncoder)
	_, err = c.Serialize()
	assert.ErrorIs(t, err, ErrOutputInvalid)

	c.SetEncoder(nil)
	got, err := c.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "foo=a%20b", got)
}

func TestZeroValueCookie(t *testing.T) {
	var z Cookie

	assert.NotPanics(t, func() {
		_, err := z.Serialize()
		assert.ErrorIs(t, err, ErrNameInvalid)
		_, err = z.HTTPCookie()
		assert.ErrorIs(t, err, ErrNameInvalid)
		assert.Contains(t, z.String(), "name is empty")
	})

	clone := z.Clone()
	assert.Empty(t, clone.Attributes().Values())
	assert.NotNil(t, clone.Encoder())

	next, err := z.WithValue("v")
	require.NoError(t, err)
	assert.Equal(t, "v", next.Value())
	assert.Empty(t, z.Value(), "WithValue leaves the receiver alone")

	require.NoError(t, z.SetName("foo"))
	require.NoError(t, z.SetValue("a b"))
	got, err := z.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "foo=a%20b", got)

	require.NoError(t, z.Attributes().SetPath("/"))
	got, err = z.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "foo=a%20b; Path=/", got)

	hc, err := z.HTTPCookie()
	require.NoError(t, err)
	assert.Equal(t, "/", hc.Path)
}

func TestCloneAndWithValue(t *testing.T) {
	c, err := New("foo", "bar", Values{AttrPath: "/"})
	require.NoError(t, err)

	clone := c.Clone()
	require.NoError(t, clone.Attributes().SetDomain("example.com"))
	_, ok := c.Attributes().Domain()
	assert.False(t, ok, "clone has its own attributes")

	other, err := c.WithValue("baz")
	require.NoError(t, err)
	assert.Equal(t, "baz", other.Value())
	assert.Equal(t, "bar", c.Value())
	assert.Equal(t, c.Attributes().Values(), other.Attributes().Values())

	_, err = c.WithValue("\r")
	assert.ErrorIs(t, err, ErrValueInvalid)
}

func TestSerializeParseRoundTrip(t *testing.T) {
	values := []string{
		"",
		"bar",
		"bar?",
		"a b;c,d\"e\\f",
		"héllo wörld",
		"tab\there",
		"100% sure",
		"Magic+Mouse",
	}
	for _, v := range values {
		c, err := New("foo", v, nil)
		require.NoError(t, err, "%q", v)

		header, err := c.Serialize()
		require.NoError(t, err, "%q", v)

		parsed := Parse(header, nil)
		require.Len(t, parsed, 1, "%q", header)
		assert.Equal(t, "foo", parsed[0].Name())
		assert.Equal(t, v, parsed[0].Value(), "%q", header)
	}
}
