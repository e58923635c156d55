package interfaces

import "context"

// IKeyValueStore is the long-lived storage port behind the persistence adapter.
//
// Implementations:
//   - DynamoDB repository (one item per key)
//   - in-memory store (tests and runs without a backend)
//
// Get reports found=false for a missing key; that is not an error.

type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ISessionStore is the session-scoped storage port. Entries expire with the
// session; Take reads and deletes in one step.

type ISessionStore interface {
	IKeyValueStore
	Take(ctx context.Context, key string) (value string, found bool, err error)
}
