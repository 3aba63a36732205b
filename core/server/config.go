package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to trigger reconciliation runs.
	// Empty disables the auth gate (local development only).
	ApiKey string `mapstructure:"api_key" default:""`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}
