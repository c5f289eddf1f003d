package server

// Server defines the lifecycle contract of the API server.
//
// Implementations block in [RunServer] until a stop signal arrives or the
// listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
