// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for the listener, the API key used by the
// auth middleware and the request body limit applied to submitted command output.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/start to build the Fiber application.
package server
