package cookie

import (
	"errors"
	"fmt"
)

var (
	// ErrNameInvalid is returned when a cookie name is empty or not an HTTP token.
	ErrNameInvalid = errors.New("cookie: name is empty or contains illegal characters")
	// ErrValueInvalid is returned when a cookie value contains illegal characters.
	ErrValueInvalid = errors.New("cookie: value contains illegal characters")
	// ErrOutputInvalid is returned by Serialize when the encoder produced a
	// value that is not made of cookie-octets.
	ErrOutputInvalid = errors.New("cookie: encoded value contains illegal characters")
	// ErrAttributeInvalid is matched by every *AttributeError.
	ErrAttributeInvalid = errors.New("cookie: attribute is invalid")
)

// AttributeError reports an attribute that failed validation.
type AttributeError struct {
	Cookie string
	Attr   Attr
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("cookie: %q %s option is invalid", e.Cookie, e.Attr.Key())
}

// Unwrap lets errors.Is match ErrAttributeInvalid.
func (e *AttributeError) Unwrap() error {
	return ErrAttributeInvalid
}

func valueError(name string) error {
	return fmt.Errorf("%w: %q", ErrValueInvalid, name)
}

func outputError(name string) error {
	return fmt.Errorf("%w: %q", ErrOutputInvalid, name)
}
