// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles: startup of
// every configured transport and graceful shutdown of all of them once the
// run context is cancelled.
package server
