// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running server started from the fx OnStart hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
