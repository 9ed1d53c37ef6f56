// Package adapter talks to a running notes server over HTTP.
package adapter

import "context"

// ServerClient is the client side of a notes server.
type ServerClient interface {
	// Health succeeds when the server answers its health endpoint with 200,
	// which also means its database is reachable.
	Health(ctx context.Context) error
}
