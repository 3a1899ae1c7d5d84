package server

// Server is the API process lifecycle driven by cmd/server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives and returns
	// the listener error, if any.
	RunServer() error

	// Shutdown lets in-flight requests, streamed AI answers included, finish
	// within the grace period.
	Shutdown()
}
