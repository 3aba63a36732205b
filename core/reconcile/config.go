package reconcile

// Config holds configuration for reconciliation runs.
type Config struct {
	// TimeoutSeconds bounds a whole run. On expiry the run fails with
	// ErrTimeout instead of returning a partial report.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
