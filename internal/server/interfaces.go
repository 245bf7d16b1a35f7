package server

// Server defines the lifecycle contract of the API server.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received or the
// listener fails, and then shuts down gracefully.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
