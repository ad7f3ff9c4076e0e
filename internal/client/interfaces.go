package client

// Client is a runnable client process.
type Client interface {
	// Run blocks until the operator quits or a stop signal arrives. The
	// background workers and the local stores are released before it
	// returns.
	Run() error
}

var _ Client = (*app)(nil)
