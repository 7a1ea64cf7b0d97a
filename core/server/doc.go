// Package server holds the configuration for the HTTP report surface.
//
// The server exposes read-only endpoints (catalog renderings and material
// library reports); all mutation goes through the CLI. Configuration
// covers the listen port, the API key protecting the endpoints, and the
// identifier of the host document the material library belongs to.
package server
