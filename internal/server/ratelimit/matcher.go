package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves a request path and method to its endpoint
// configuration, or nil when only the default limit applies. Exact paths are
// tried first; configs whose path ends with "/" act as prefixes, which is how
// `/suggestions/{id}` style routes are covered.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health probe is never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{
			Limit:  0, // unlimited
			Window: 0,
			Burst:  0,
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
