package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/workers"
)

type stoppableWorker struct {
	stopped atomic.Bool
}

func (w *stoppableWorker) Run(ctx context.Context) {
	<-ctx.Done()
	w.stopped.Store(true)
}

func testServerConfig(addr string) config.Server {
	return config.Server{
		HTTPAddress:     addr,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, addr string, ws *workers.Workers) *server {
	t.Helper()
	cfg := config.StructuredConfig{Server: testServerConfig(addr)}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, nil, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, ws, cfg.Server, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, testServerConfig(":0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, nil, testServerConfig(":0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilShutdown(t *testing.T) {
	worker := &stoppableWorker{}
	srv := newTestServer(t, "127.0.0.1:0", workers.NewWorkers(worker))

	done := make(chan error, 1)
	go func() { done <- srv.run(context.Background()) }()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, 2*time.Second, 5*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	srv.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, worker.stopped.Load())
}

// drainCheckWorker tries to reach the server once its context is cancelled.
type drainCheckWorker struct {
	addr        func() string
	httpStopped atomic.Bool
}

func (w *drainCheckWorker) Run(ctx context.Context) {
	<-ctx.Done()
	conn, err := net.DialTimeout("tcp", w.addr(), time.Second)
	if err != nil {
		w.httpStopped.Store(true)
		return
	}
	_ = conn.Close()
}

func TestServer_WorkersStopAfterHTTP(t *testing.T) {
	worker := &drainCheckWorker{}
	srv := newTestServer(t, "127.0.0.1:0", workers.NewWorkers(worker))
	worker.addr = srv.Addr

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, worker.httpStopped.Load(), "workers were stopped before the HTTP listener closed")
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := newTestServer(t, ln.Addr().String(), nil)

	err = srv.run(context.Background())
	assert.Error(t, err)
}
