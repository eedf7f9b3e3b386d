package transport

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"yatfs/internal/config"

	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"
)

// ConnectionHandler processes one accepted connection. The server closes
// conn after the handler returns.
type ConnectionHandler func(ctx context.Context, conn net.Conn) error

// Server accepts inbound transfers. By default it handles exactly one
// connection and returns; with Transfer.KeepAlive it keeps accepting and
// runs each connection on its own goroutine.
type Server struct {
	config  *config.Config
	handler ConnectionHandler
}

// NewServer creates a new transfer server
func NewServer(cfg *config.Config, handler ConnectionHandler) *Server {
	return &Server{
		config:  cfg,
		handler: handler,
	}
}

// Listen binds the configured address
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.config.Address(), err)
	}
	return ln, nil
}

// ListenAndServe binds the configured address and serves on it
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until the single transfer finishes or,
// in keep-alive mode, until ctx is cancelled. ln is always closed.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()

	stop := context.AfterFunc(ctx, func() {
		ln.Close()
	})
	defer stop()

	if !s.config.Transfer.KeepAlive {
		conn, err := ln.Accept()
		if err != nil {
			return s.acceptError(ctx, err)
		}
		return s.handle(ctx, conn)
	}

	if limit := s.config.Transfer.MaxConnections; limit > 0 {
		ln = netutil.LimitListener(ln, limit)
	}

	var g errgroup.Group
	for {
		conn, err := ln.Accept()
		if err != nil {
			// let in-flight transfers finish writing their files
			_ = g.Wait()
			return s.acceptError(ctx, err)
		}

		// per-connection failures are logged and never stop the accept loop
		g.Go(func() error {
			if err := s.handle(ctx, conn); err != nil {
				log.Printf("Transfer from %s failed: %v", conn.RemoteAddr(), err)
			}
			return nil
		})
	}
}

func (s *Server) handle(ctx context.Context, conn net.Conn) error {
	defer conn.Close()

	log.Printf("Accepted connection from %s", conn.RemoteAddr())
	return s.handler(ctx, conn)
}

// acceptError maps the listener being closed by cancellation to ctx.Err()
func (s *Server) acceptError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, net.ErrClosed) {
		return ctxErr
	}
	return fmt.Errorf("failed to accept connection: %w", err)
}
