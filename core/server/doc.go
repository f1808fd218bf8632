// Package server holds the HTTP server configuration.
//
// It only defines the partial Config consumed by core/config; the actual
// Fiber application is assembled in the start command.
package server
