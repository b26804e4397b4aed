package registry

import (
	"context"
	"strings"
)

// Profile is the caller-defined profile document attached to a name. The
// registry stores it as-is; the client only requires it to be JSON
// serializable.
type Profile map[string]any

// LookupUsers fetches the registry records for one or more usernames in a
// single request. The names are comma-joined into the path verbatim, with
// no escaping.
func (c *Client) LookupUsers(ctx context.Context, usernames []string, opts ...RequestOption) ([]byte, error) {
	return c.get(ctx, c.endpoints.Users+"/"+strings.Join(usernames, ","), opts...)
}

// AllUsers fetches the full list of registered usernames.
func (c *Client) AllUsers(ctx context.Context, opts ...RequestOption) ([]byte, error) {
	return c.get(ctx, c.endpoints.Users, opts...)
}

// RegisterUser submits a registration for username, directing ownership to
// recipientAddress. A nil profile is omitted from the request body
// entirely; the registry then creates the name with an empty profile.
//
// The client performs no validation of the username or address. Malformed
// input surfaces as whatever error payload the registry returns.
func (c *Client) RegisterUser(
	ctx context.Context,
	username string,
	recipientAddress string,
	profile Profile,
	opts ...RequestOption,
) ([]byte, error) {
	body := map[string]any{
		"username":          username,
		"recipient_address": recipientAddress,
	}

	if profile != nil {
		body["profile"] = profile
	}

	return c.post(ctx, c.endpoints.Users, body, opts...)
}

// UpdateUser replaces the profile document of username. The update must be
// authorized by the key that owns the name, passed as ownerPubkey.
func (c *Client) UpdateUser(
	ctx context.Context,
	username string,
	profile Profile,
	ownerPubkey string,
	opts ...RequestOption,
) ([]byte, error) {
	body := map[string]any{
		"profile":      profile,
		"owner_pubkey": ownerPubkey,
	}

	return c.post(ctx, c.userUpdateEndpoint(username), body, opts...)
}

// TransferUser hands ownership of username to transferAddress.
//
// The registry exposes no dedicated transfer endpoint: transfers go to the
// same update endpoint as UpdateUser and are disambiguated server-side by
// the body carrying transfer_address instead of profile. Unusual, but it
// is the documented service contract.
func (c *Client) TransferUser(
	ctx context.Context,
	username string,
	transferAddress string,
	ownerPubkey string,
	opts ...RequestOption,
) ([]byte, error) {
	body := map[string]any{
		"transfer_address": transferAddress,
		"owner_pubkey":     ownerPubkey,
	}

	return c.post(ctx, c.userUpdateEndpoint(username), body, opts...)
}

func (c *Client) userUpdateEndpoint(username string) string {
	return c.endpoints.Users + "/" + username + "/update"
}
