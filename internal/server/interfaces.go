package server

// Server defines the lifecycle of the application server.
//
// [RunServer] blocks until a stop signal arrives, [Shutdown] is called or
// serving fails, and returns after the graceful shutdown has completed.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown asks a running server to stop. It does not wait.
	Shutdown()
}
