// Package server holds the HTTP server configuration.
//
// The HTTP layer is a thin collaborator around the reconciliation engine:
// it authenticates callers via the configured API key, parses textual date
// inputs, and serializes reports. The engine itself knows nothing about
// transport concerns.
package server
