package basicauth

import (
	"encoding/base64"
	"errors"
)

var ErrMissingCredentials = errors.New("basicauth: app id or app secret is not set")

// Credentials is an immutable app id/secret pair. It is the only
// authentication material the registry API accepts; the pair is turned
// into an HTTP Basic Authorization header value on every request.
type Credentials struct {
	appID     string
	appSecret string
}

func New(appID, appSecret string) Credentials {
	return Credentials{
		appID:     appID,
		appSecret: appSecret,
	}
}

// HeaderValue derives the Authorization header value
// "Basic " + base64(appID + ":" + appSecret).
//
// Both credentials must be present. An empty app id or secret returns
// ErrMissingCredentials instead of encoding a placeholder string.
func (c Credentials) HeaderValue() (string, error) {
	if c.appID == "" || c.appSecret == "" {
		return "", ErrMissingCredentials
	}

	raw := c.appID + ":" + c.appSecret

	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

// AppID returns the application identifier. The secret is deliberately
// not exposed.
func (c Credentials) AppID() string {
	return c.appID
}
