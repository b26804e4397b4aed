package registry_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDKIMPublicKey_RequestsDKIMPath(t *testing.T) {
	t.Parallel()

	server, captured := newCaptureServer(t)
	client := newTestClient(server)

	_, err := client.DKIMPublicKey(context.Background(), "example.com")
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	assert.Equal(t, http.MethodGet, (*captured)[0].Method)
	assert.Equal(t, "/domains/example.com/dkim", (*captured)[0].Path)
}
