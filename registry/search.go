package registry

import "context"

// Search runs a registry search. The query is appended to the search
// endpoint verbatim, unescaped: query syntax such as "twitter:handle" is
// the caller's responsibility.
func (c *Client) Search(ctx context.Context, query string, opts ...RequestOption) ([]byte, error) {
	return c.get(ctx, c.endpoints.Search+query, opts...)
}
