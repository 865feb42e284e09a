package server

import "context"

// Server defines the lifecycle of the feed server.
type Server interface {
	// RunServer serves until a stop signal arrives or a component fails.
	RunServer()

	// Run serves until ctx is cancelled or a component fails. It returns
	// after everything has shut down.
	Run(ctx context.Context) error
}
