// Package workers runs the client's background jobs for as long as a user
// is signed in.
package workers

import "context"

// Worker is a background job. Run returns at once and the job keeps going
// on its own goroutine until ctx is done or Stop is called. Stop waits for
// that goroutine to exit.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
