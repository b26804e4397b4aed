package registry

import "strings"

// Endpoints holds the base URLs for the five endpoint families exposed by
// the registry API. It is a plain value: callers construct one (or take a
// default set) and hand it to the client, no process-wide state involved.
//
// Search is a full URL prefix including the query parameter name; the
// search term is appended to it verbatim.
type Endpoints struct {
	Users        string
	Search       string
	Transactions string
	Addresses    string
	Domains      string
}

const (
	mainnetBaseURL = "https://api.blockname.io/v1"
	stagingBaseURL = "https://api.staging.blockname.io/v1"
)

// DefaultEndpoints returns the production (mainnet) endpoint set.
func DefaultEndpoints() Endpoints {
	return endpointsFor(mainnetBaseURL)
}

// StagingEndpoints returns the endpoint set of the staging registry, which
// runs against testnet infrastructure.
func StagingEndpoints() Endpoints {
	return endpointsFor(stagingBaseURL)
}

func endpointsFor(baseURL string) Endpoints {
	baseURL = strings.TrimSuffix(baseURL, "/")

	return Endpoints{
		Users:        baseURL + "/users",
		Search:       baseURL + "/search?query=",
		Transactions: baseURL + "/transactions",
		Addresses:    baseURL + "/addresses",
		Domains:      baseURL + "/domains",
	}
}
