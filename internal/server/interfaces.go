package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations block in [Server.RunServer] until ctx is cancelled or the
// listener fails, and release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server. In-flight requests get until ctx
	// expires to finish.
	Shutdown(ctx context.Context) error
}
