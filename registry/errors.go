package registry

import "errors"

var (
	ErrRequestFailed    = errors.New("registry: request failed")
	ErrCreateRequest    = errors.New("registry: failed to create request")
	ErrEncodeBody       = errors.New("registry: failed to encode request body")
	ErrReadResponse     = errors.New("registry: failed to read response body")
	ErrAuthFailed       = errors.New("registry: authentication failed")
	ErrResponseTooLarge = errors.New("registry: response body too large")
)
