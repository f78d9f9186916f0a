// Package adapter defines the contract between the server and its
// protocol front-ends.
package adapter

import "context"

// Adapter represents a protocol-specific server front-end managed by the
// main process.
//
// Each adapter exposes the drive engine over one protocol (currently REST).
// All adapters share the same engine instance, so behavior is identical
// across protocols.
//
// Lifecycle:
//  1. Creation: the adapter is built with its configuration and the engine
//  2. Startup: Serve() starts the server and blocks until shutdown
//  3. Shutdown: context cancellation or Stop() triggers graceful shutdown
//
// Implementations must be safe for concurrent use: Stop() may be called
// while Serve() is running.
type Adapter interface {
	// Serve starts the server and blocks until the context is cancelled or
	// an unrecoverable error occurs. On cancellation it must stop accepting
	// new requests, drain in-flight ones within the configured timeout, and
	// return nil on graceful shutdown.
	Serve(ctx context.Context) error

	// Stop initiates graceful shutdown. Safe to call multiple times and
	// concurrently with Serve(). The context bounds the drain time.
	Stop(ctx context.Context) error

	// Protocol returns the human-readable protocol name for logging.
	Protocol() string

	// Port returns the TCP port the adapter listens on, or 0 before start.
	Port() int
}
