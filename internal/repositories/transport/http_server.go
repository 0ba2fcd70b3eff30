package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Lumerin-protocol/flow-editor-api/internal/interfaces"
)

type HTTPServer struct {
	serverAddr      string
	handler         http.Handler
	shutdownTimeout time.Duration

	log interfaces.ILogger
}

func NewHTTPServer(serverAddr string, handler http.Handler, shutdownTimeout time.Duration, log interfaces.ILogger) *HTTPServer {
	return &HTTPServer{
		serverAddr:      serverAddr,
		handler:         handler,
		shutdownTimeout: shutdownTimeout,
		log:             log,
	}
}

// Run serves until ctx is cancelled, then waits up to shutdownTimeout for in-flight requests.
// Request contexts are not derived from ctx, so they are not cancelled before the wait
func (p *HTTPServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", p.serverAddr)
	if err != nil {
		return fmt.Errorf("listener error %s %w", p.serverAddr, err)
	}
	return p.Serve(ctx, listener)
}

func (p *HTTPServer) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           p.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	p.log.Infof("http server is listening: %s", listener.Addr())

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), p.shutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		p.log.Warnf("http server shutdown: %s", err)
		_ = server.Close()
	}
	if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	p.log.Infof("http server closed: %s", listener.Addr())
	return ctx.Err()
}
