// Package rest implements the HTTP/JSON adapter for the drive engine.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/marmos91/dittodrive/internal/logger"
	"github.com/marmos91/dittodrive/pkg/drive"
)

// RESTConfig holds configuration for the REST adapter.
//
// Zero timeouts fall back to the defaults applied by NewRESTAdapter.
type RESTConfig struct {
	// Enabled controls whether the REST adapter is started.
	Enabled bool `mapstructure:"enabled"`

	// Host is the interface to bind to. Empty means all interfaces.
	Host string `mapstructure:"host"`

	// Port is the TCP port to listen on. If 0, defaults to 8080.
	Port int `mapstructure:"port" validate:"min=0,max=65535"`

	// ReadTimeout bounds reading a complete request (default 30s).
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout bounds writing a complete response (default 30s).
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout closes keep-alive connections after inactivity (default 2m).
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// ShutdownTimeout bounds draining in-flight requests (default 30s).
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RESTAdapter serves the drive engine over HTTP/JSON.
//
// Routing uses net/http method-and-path patterns; request and response
// bodies are JSON. The acting user is taken from the X-Acting-User header,
// a stand-in for real authentication, which is out of scope.
type RESTAdapter struct {
	config  RESTConfig
	service *drive.Service
	server  *http.Server

	// port holds the bound port once the listener is open
	port int

	shutdownOnce sync.Once
	shutdown     chan struct{}
}

// NewRESTAdapter creates a REST adapter over the given engine.
func NewRESTAdapter(config RESTConfig, service *drive.Service) *RESTAdapter {
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 30 * time.Second
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 30 * time.Second
	}
	if config.IdleTimeout == 0 {
		config.IdleTimeout = 2 * time.Minute
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 30 * time.Second
	}

	return &RESTAdapter{
		config:   config,
		service:  service,
		shutdown: make(chan struct{}),
	}
}

// Serve starts the HTTP server and blocks until the context is cancelled or
// the listener fails.
func (adapter *RESTAdapter) Serve(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", adapter.config.Host, adapter.config.Port)

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	adapter.port = listener.Addr().(*net.TCPAddr).Port

	adapter.server = &http.Server{
		Handler:      adapter.routes(),
		ReadTimeout:  adapter.config.ReadTimeout,
		WriteTimeout: adapter.config.WriteTimeout,
		IdleTimeout:  adapter.config.IdleTimeout,
	}

	logger.Info("REST adapter listening on %s", listener.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- adapter.server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		return adapter.Stop(context.Background())
	case <-adapter.shutdown:
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Stop drains in-flight requests and closes the listener.
func (adapter *RESTAdapter) Stop(ctx context.Context) error {
	var err error
	adapter.shutdownOnce.Do(func() {
		defer close(adapter.shutdown)
		if adapter.server == nil {
			return
		}

		drainCtx, cancel := context.WithTimeout(ctx, adapter.config.ShutdownTimeout)
		defer cancel()

		logger.Info("REST adapter shutting down")
		err = adapter.server.Shutdown(drainCtx)
	})
	return err
}

// Protocol returns the adapter's protocol name.
func (adapter *RESTAdapter) Protocol() string {
	return "REST"
}

// Port returns the bound port, or 0 before Serve.
func (adapter *RESTAdapter) Port() int {
	return adapter.port
}
