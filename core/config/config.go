package config

import (
	"reflect"
	"strings"

	"payment-reconciler/core/archive"
	"payment-reconciler/core/database"
	"payment-reconciler/core/ledger"
	"payment-reconciler/core/logger"
	"payment-reconciler/core/reconcile"
	"payment-reconciler/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the order database connection.
	Database database.Config `mapstructure:"database"`
	// Ledger holds configuration for the Stripe charge ledger client.
	Ledger ledger.Config `mapstructure:"ledger"`
	// Archive holds configuration for report archival storage.
	Archive archive.Config `mapstructure:"archive"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Reconcile holds configuration for reconciliation runs.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists; ignore the error in production where
	// configuration comes from the environment directly.
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LEDGER_SECRET_KEY -> ledger.secret_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
