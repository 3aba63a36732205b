package ledger

// Config holds configuration for the Stripe charge ledger client.
type Config struct {
	// SecretKey is the Stripe secret API key.
	SecretKey string `mapstructure:"secret_key" default:""`
	// PageSize is the number of charges requested per page. Stripe caps
	// this at 100; listing still exhausts all pages either way.
	PageSize int `mapstructure:"page_size" default:"100"`
}
