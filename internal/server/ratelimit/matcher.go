package ratelimit

import "strings"

// MatchEndpoint resolves the endpoint configuration for a request path and
// method. Exact path matches win; configurations whose path ends in "/" act
// as prefix matches. The health check is always unlimited. Returns nil when
// nothing matches, in which case the caller applies the global default.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method != method || !strings.HasSuffix(configs[i].Path, "/") {
			continue
		}
		if strings.HasPrefix(path, configs[i].Path) {
			return &configs[i]
		}
	}

	return nil
}
