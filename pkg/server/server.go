// Package server orchestrates the lifecycle of the protocol adapters that
// expose the drive engine.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/marmos91/dittodrive/internal/logger"
	"github.com/marmos91/dittodrive/pkg/adapter"
	"github.com/marmos91/dittodrive/pkg/drive"
)

// DriveServer manages multiple protocol adapters over one drive engine.
//
// All adapters share the same engine instance, so a node created over one
// protocol is immediately visible to the others.
//
// Lifecycle:
//  1. Creation: New() with the engine
//  2. Registration: AddAdapter() for each protocol
//  3. Startup: Serve() starts all adapters concurrently
//  4. Shutdown: context cancellation stops all adapters gracefully
//
// Serve() must only be called once per instance.
type DriveServer struct {
	service  *drive.Service
	adapters []adapter.Adapter

	// mu protects the adapters slice and the served flag
	mu     sync.Mutex
	served bool
}

// New creates a server over the given engine.
//
// Panics if service is nil (programmer error).
func New(service *drive.Service) *DriveServer {
	if service == nil {
		panic("drive service cannot be nil")
	}
	return &DriveServer{service: service}
}

// Service returns the shared engine.
func (s *DriveServer) Service() *drive.Service {
	return s.service
}

// AddAdapter registers a protocol adapter.
//
// Each adapter must implement a different protocol. Must not be called
// after Serve().
func (s *DriveServer) AddAdapter(a adapter.Adapter) error {
	if a == nil {
		panic("adapter cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.served {
		panic("cannot add adapter after Serve() has been called")
	}

	for _, existing := range s.adapters {
		if existing.Protocol() == a.Protocol() {
			return fmt.Errorf("adapter for protocol %s already registered", a.Protocol())
		}
	}

	s.adapters = append(s.adapters, a)
	logger.Info("registered %s adapter", a.Protocol())
	return nil
}

// Serve starts all registered adapters and blocks until the context is
// cancelled or an adapter fails.
//
// On shutdown every adapter receives Stop() in reverse registration order,
// then Serve waits for all adapter goroutines to return.
//
// Returns nil on graceful shutdown triggered by context cancellation, or
// the first adapter error otherwise.
func (s *DriveServer) Serve(ctx context.Context) error {
	s.mu.Lock()
	if s.served {
		s.mu.Unlock()
		panic("Serve() has already been called on this server instance")
	}
	s.served = true

	if len(s.adapters) == 0 {
		s.mu.Unlock()
		return fmt.Errorf("no adapters registered; call AddAdapter() before Serve()")
	}
	adapters := make([]adapter.Adapter, len(s.adapters))
	copy(adapters, s.adapters)
	s.mu.Unlock()

	logger.Info("starting server with %d adapter(s)", len(adapters))

	// Buffered so failing adapters never block on send.
	errChan := make(chan adapterError, len(adapters))
	var wg sync.WaitGroup

	for _, adp := range adapters {
		wg.Add(1)
		go func(a adapter.Adapter) {
			defer wg.Done()

			protocol := a.Protocol()
			if err := a.Serve(ctx); err != nil {
				// context.Canceled is expected during shutdown.
				if err != context.Canceled && ctx.Err() == nil {
					logger.Error("%s adapter failed: %v", protocol, err)
					errChan <- adapterError{protocol: protocol, err: err}
					return
				}
			}
			logger.Info("%s adapter stopped", protocol)
		}(adp)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		s.stopAllAdapters(adapters)

	case adapterErr := <-errChan:
		logger.Error("%s adapter failed, stopping all adapters", adapterErr.protocol)
		s.stopAllAdapters(adapters)
		serveErr = fmt.Errorf("%s adapter error: %w", adapterErr.protocol, adapterErr.err)
	}

	wg.Wait()
	logger.Info("server stopped")
	return serveErr
}

// adapterError pairs an adapter protocol name with its error.
type adapterError struct {
	protocol string
	err      error
}

// stopAllAdapters signals graceful shutdown in reverse registration order.
func (s *DriveServer) stopAllAdapters(adapters []adapter.Adapter) {
	const stopTimeout = 30 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	for i := len(adapters) - 1; i >= 0; i-- {
		adp := adapters[i]
		if err := adp.Stop(ctx); err != nil && err != context.Canceled {
			logger.Error("error stopping %s adapter: %v", adp.Protocol(), err)
		}
	}
}
