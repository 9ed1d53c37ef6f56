package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger

	mu   sync.Mutex
	stop context.CancelFunc
	addr string
}

// NewServer prepares the HTTP server for handlers. ws may be nil.
func NewServer(handlers *handler.Handlers, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    ws,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		s.stop()
	}
}

// Addr returns the address the HTTP server is bound to, or "" before it is.
func (s *server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.stop = cancel
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	// Workers outlive ctx: they are stopped only after HTTP has drained.
	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		s.workers.Run(workersCtx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()
	s.logger.Info().Str("address", ln.Addr().String()).Int("workers", s.workers.Len()).Msg("HTTP server started")

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop requested, shutting down")
		err = s.httpServer.Shutdown()
		err = errors.Join(err, <-serveErr)
	case err = <-serveErr:
	}

	cancel()
	stopWorkers()
	<-workersDone

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}
