package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Daemon runs the HTTP API until it is stopped or receives a signal
type Daemon struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger
	ctx             context.Context
	cancel          context.CancelFunc

	mu        sync.Mutex
	listener  net.Listener
	startedAt time.Time
	running   bool
}

// NewDaemon creates a new daemon serving handler on addr
func NewDaemon(addr string, handler http.Handler, shutdownTimeout time.Duration, logger *zap.Logger) *Daemon {
	if logger == nil {
		logger = zap.NewNop()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// Start serves until Stop is called or SIGINT/SIGTERM arrives,
// then shuts the server down gracefully
func (d *Daemon) Start() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	return d.serve(d.ctx, sigChan)
}

// RunWithTimeout serves for at most timeout (for testing)
func (d *Daemon) RunWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(d.ctx, timeout)
	defer cancel()

	return d.serve(ctx, nil)
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// Addr returns the bound address once the daemon is listening
func (d *Daemon) Addr() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listener == nil {
		return ""
	}
	return d.listener.Addr().String()
}

// GetStatus returns daemon status
func (d *Daemon) GetStatus() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := map[string]any{
		"running": d.running,
		"addr":    d.server.Addr,
	}
	if d.running {
		status["uptime"] = time.Since(d.startedAt).Round(time.Second).String()
	}
	if d.listener != nil {
		status["addr"] = d.listener.Addr().String()
	}
	return status
}

func (d *Daemon) serve(ctx context.Context, sigChan <-chan os.Signal) error {
	listener, err := net.Listen("tcp", d.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", d.server.Addr, err)
	}

	d.mu.Lock()
	d.listener = listener
	d.startedAt = time.Now()
	d.running = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.running = false
		d.mu.Unlock()
	}()

	d.logger.Info("Daemon started",
		zap.String("addr", listener.Addr().String()),
		zap.Duration("shutdown_timeout", d.shutdownTimeout))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- d.server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)

	case sig := <-sigChan:
		d.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))

	case <-ctx.Done():
		d.logger.Info("Daemon stopping")
	}

	return d.shutdown()
}

func (d *Daemon) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer cancel()

	if err := d.server.Shutdown(ctx); err != nil {
		d.logger.Error("Graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	d.logger.Info("Daemon stopped")
	return nil
}
