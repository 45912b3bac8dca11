// Package delivery defines the contract every transport (HTTP today,
// possibly gRPC or workers later) must satisfy to be started by the app.
package delivery

import "context"

// Delivery is a server that can be started by the composition root.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
