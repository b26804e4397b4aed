package registry

import "context"

// BroadcastTransaction submits a signed, hex-encoded transaction to the
// registry's blockchain node for broadcast. Signing happens entirely on
// the caller's side; the client never sees key material.
func (c *Client) BroadcastTransaction(ctx context.Context, signedHex string, opts ...RequestOption) ([]byte, error) {
	body := map[string]any{
		"signed_hex": signedHex,
	}

	return c.post(ctx, c.endpoints.Transactions, body, opts...)
}
