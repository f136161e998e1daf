// Package delivery holds the inbound adapters of landshare: the admin API, the push worker and the job scheduler.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the application entrypoint.
// Serve blocks until the adapter stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
