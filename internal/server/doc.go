// Package server runs the local vault agent's HTTP transport.
//
// It owns the listener lifecycle: startup, SIGINT/SIGTERM handling and a
// bounded graceful shutdown.
package server
