// Package config provides configuration management for the reconciliation
// service.
//
// Configuration is assembled from per-package partial configs (server,
// database, ledger, archive, log, reconcile), each declaring its own
// defaults via struct tags. Values come from the environment, optionally
// seeded by a .env file, with nested keys mapped from underscored
// variable names (LEDGER_SECRET_KEY -> ledger.secret_key).
//
// Secrets such as the Stripe key are carried as explicit configuration
// values injected at construction time, never read from implicit global
// state, so every component stays testable with fakes.
package config
