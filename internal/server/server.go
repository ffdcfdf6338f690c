// Package server runs a fixed pool of workers over one listening socket and
// provides the connection handlers that speak to clients.
//
// Each worker accepts a connection and handles it to completion before it
// accepts the next one, so at most Workers connections are in flight.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DefaultWorkers is the pool size used when Server.Workers is not positive.
const DefaultWorkers = 4

// DefaultReadTimeout bounds how long a connection may stay silent.
const DefaultReadTimeout = 10 * time.Second

// acceptBackoff is the pause after a transient accept error.
const acceptBackoff = 50 * time.Millisecond

// ErrServerClosed is returned by Serve and ListenAndServe after Shutdown.
var ErrServerClosed = errors.New("server: Server closed")

// ConnHandler serves one accepted connection. The server closes conn after
// ServeConn returns.
type ConnHandler interface {
	ServeConn(ctx context.Context, conn net.Conn)
}

// ConnHandlerFunc adapts a function to ConnHandler.
type ConnHandlerFunc func(ctx context.Context, conn net.Conn)

// ServeConn calls f(ctx, conn).
func (f ConnHandlerFunc) ServeConn(ctx context.Context, conn net.Conn) { f(ctx, conn) }

// Server is a fixed-size pool of workers sharing one listener.
type Server struct {
	Handler     ConnHandler
	Workers     int
	Logger      *slog.Logger  // nil discards
	ReadTimeout time.Duration // per-connection read deadline; 0 means DefaultReadTimeout

	mu       sync.Mutex
	ln       net.Listener
	shutdown atomic.Bool
	wg       sync.WaitGroup

	errOnce   sync.Once
	acceptErr error
}

// ListenAndServe binds a TCP socket on addr and calls Serve.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.Serve(ln)
}

// Serve starts the workers on ln and blocks until all of them have exited.
// It returns ErrServerClosed after Shutdown, or the error that closed the
// listener underneath it.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.shutdown.Load() {
		s.mu.Unlock()
		ln.Close()
		return ErrServerClosed
	}
	s.ln = ln
	n := s.workers()
	s.wg.Add(n)
	s.mu.Unlock()

	log := s.logger()
	log.Info("server listening", "addr", ln.Addr().String(), "workers", n)

	for i := 0; i < n; i++ {
		key := "worker-" + uuid.NewString()
		go s.runWorker(ln, key)
	}
	s.wg.Wait()

	if s.shutdown.Load() {
		return ErrServerClosed
	}
	return s.acceptErr
}

// Shutdown closes the listener and waits for the workers to finish their
// current connection, or for ctx to be done. A connection being handled is
// not interrupted.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdown.Store(true)
	ln := s.ln
	s.mu.Unlock()

	if ln != nil {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			s.logger().Warn("closing listener", "error", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger().Info("server stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("server: waiting for workers: %w", ctx.Err())
	}
}

func (s *Server) runWorker(ln net.Listener, key string) {
	defer s.wg.Done()

	log := s.logger().With("worker", key)
	ctx := WithWorkerID(WithLogger(context.Background(), log), key)
	log.Debug("worker started")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.shutdown.Load() {
				log.Debug("worker stopped")
				return
			}
			if errors.Is(err, net.ErrClosed) {
				s.errOnce.Do(func() { s.acceptErr = fmt.Errorf("server: accept: %w", err) })
				log.Debug("listener closed, worker stopped")
				return
			}
			log.Warn("accept failed", "error", err)
			time.Sleep(acceptBackoff)
			continue
		}
		s.serveConn(ctx, conn)
	}
}

// serveConn runs the handler for one connection and always closes it. A
// panicking handler costs the connection, not the worker.
func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	log := LoggerFrom(ctx).With("remote", conn.RemoteAddr().String())
	ctx = WithLogger(ctx, log)

	defer func() {
		if r := recover(); r != nil {
			log.Error("connection handler panicked", "panic", r)
		}
		conn.Close()
	}()

	if err := conn.SetReadDeadline(time.Now().Add(s.readTimeout())); err != nil {
		log.Debug("set read deadline", "error", err)
		return
	}
	s.Handler.ServeConn(ctx, conn)
}

func (s *Server) workers() int {
	if s.Workers <= 0 {
		return DefaultWorkers
	}
	return s.Workers
}

func (s *Server) readTimeout() time.Duration {
	if s.ReadTimeout <= 0 {
		return DefaultReadTimeout
	}
	return s.ReadTimeout
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return discardLogger
	}
	return s.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
