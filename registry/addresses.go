package registry

import "context"

// UnspentOutputs fetches the unspent transaction outputs funding the given
// blockchain address. Callers typically use these to construct a name
// registration or transfer transaction before handing it back to
// BroadcastTransaction.
func (c *Client) UnspentOutputs(ctx context.Context, address string, opts ...RequestOption) ([]byte, error) {
	return c.get(ctx, c.endpoints.Addresses+"/"+address+"/unspents", opts...)
}

// NamesOwned fetches the registry names owned by the given address.
func (c *Client) NamesOwned(ctx context.Context, address string, opts ...RequestOption) ([]byte, error) {
	return c.get(ctx, c.endpoints.Addresses+"/"+address+"/names", opts...)
}
