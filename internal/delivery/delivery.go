// Package delivery defines the contract every transport front end
// (HTTP today, possibly others later) must satisfy.
package delivery

import "context"

// Delivery is a serving front end started by the application container.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
