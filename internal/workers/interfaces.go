// Package workers runs the background jobs of the feed server.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] runs a
// set of them side by side and stops all of them once one fails.
package workers

import "context"

// Worker is a background job.
//
// Run blocks until ctx is done or the job cannot continue. A nil error
// means the job stopped because ctx was cancelled.
type Worker interface {
	Run(ctx context.Context) error
}
