package surface

// SubdomainPrefixes are tried, in order, against the scan target.
var SubdomainPrefixes = []string{ //nolint: gochecknoglobals
	"api", "www", "app", "admin", "test", "dev", "staging", "prod",
	"api-v1", "api-v2", "v1", "v2", "rest", "graphql", "gateway",
	"mobile", "web", "backend", "internal", "external", "public",
	"mail", "email", "smtp", "imap", "pop", "webmail", "mx",
}

// EndpointPaths are tried, in order, against every discovered subdomain.
var EndpointPaths = []string{ //nolint: gochecknoglobals
	"/api", "/api/v1", "/api/v2", "/api/v3",
	"/rest", "/rest/v1", "/rest/v2",
	"/graphql", "/graphql/v1",
	"/swagger", "/swagger-ui", "/api-docs",
	"/openapi.json", "/swagger.json",
	"/health", "/status", "/ping",
	"/users", "/user", "/auth", "/login",
	"/admin", "/dashboard",
	"/v1", "/v2", "/v3",
}

// endpointProtocols is the probe order for endpoint discovery. Every path is
// tried over https before any path is tried over http.
var endpointProtocols = []string{"https", "http"} //nolint: gochecknoglobals

// recordedHeaders are the response headers kept on a DiscoveredEndpoint.
var recordedHeaders = []string{"server", "x-powered-by", "access-control-allow-origin"} //nolint: gochecknoglobals
