package signer

// SignerError represents signing related errors
type SignerError string

func (e SignerError) Error() string {
	return string(e)
}

const (
	ErrSecretInvalid        = SignerError("signer: secrets must be a non-empty list of non-empty strings or byte slices")
	ErrAlgorithmUnsupported = SignerError("signer: algorithm not supported")
	ErrCookieInvalid        = SignerError("signer: cookie is nil or was not built with cookie.New")
	ErrValueMissing         = SignerError("signer: cookie value is empty")
)
