package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the token clients send as "Token <key>" or "Bearer <key>".
	// An empty key disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of submitted command output.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
