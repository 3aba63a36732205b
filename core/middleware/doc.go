// Package middleware contains HTTP middleware for the Fiber application.
//
// Subpackages:
//   - rayid: assigns a unique ray_id to every request for log correlation
//   - auth: API key gate protecting the reconciliation endpoints
package middleware
