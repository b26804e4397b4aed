package registry

import "context"

// DKIMPublicKey fetches the DKIM public key published in DNS for the given
// domain, as resolved by the registry.
func (c *Client) DKIMPublicKey(ctx context.Context, domain string, opts ...RequestOption) ([]byte, error) {
	return c.get(ctx, c.endpoints.Domains+"/"+domain+"/dkim", opts...)
}
