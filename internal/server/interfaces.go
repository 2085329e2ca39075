package server

import "context"

// Server defines the lifecycle contract of the agent's transport.
//
// RunServer blocks until a stop signal arrives or ctx is cancelled, then
// shuts down gracefully. Shutdown may also be called directly.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
