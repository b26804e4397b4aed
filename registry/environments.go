package registry

import (
	"fmt"
	"sync"

	"github.com/blocknamehq/blockname-go/basicauth"
)

// Environments holds one configured client per named registry environment
// (e.g. "mainnet", "staging"), all sharing a credential pair and a set of
// default options. It lets applications switch target environments by name
// without rebuilding clients.
type Environments struct {
	creds       basicauth.Credentials
	clients     map[string]*Client
	mu          sync.RWMutex
	defaultOpts []Option
}

func NewEnvironments(creds basicauth.Credentials, defaultOpts ...Option) *Environments {
	return &Environments{
		creds:       creds,
		clients:     make(map[string]*Client),
		mu:          sync.RWMutex{},
		defaultOpts: defaultOpts,
	}
}

func (e *Environments) Register(name string, endpoints Endpoints, opts ...Option) *Environments {
	e.mu.Lock()
	defer e.mu.Unlock()

	allOpts := make([]Option, 0, len(e.defaultOpts)+len(opts)+1)
	allOpts = append(allOpts, e.defaultOpts...)
	allOpts = append(allOpts, opts...)
	allOpts = append(allOpts, WithEndpoints(endpoints))

	e.clients[name] = New(e.creds, allOpts...)

	return e
}

// Client returns the client for a registered environment and panics when
// the name is unknown. Use GetClient for a non-panicking lookup.
func (e *Environments) Client(name string) *Client {
	e.mu.RLock()
	defer e.mu.RUnlock()

	client, ok := e.clients[name]
	if !ok {
		panic(fmt.Sprintf("registry: environment %q not registered", name))
	}

	return client
}

func (e *Environments) GetClient(name string) (*Client, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	client, ok := e.clients[name]

	return client, ok
}

func (e *Environments) Has(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.clients[name]

	return ok
}

func (e *Environments) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.clients))
	for name := range e.clients {
		names = append(names, name)
	}

	return names
}
