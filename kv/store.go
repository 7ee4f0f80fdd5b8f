// Package kv provides the durable key-value store the storefront persists
// client state to (cart contents, theme preference). It plays the role the
// browser's local storage plays for the web client: a small namespace of keys
// whose values survive restarts, with no schema and no transactions.
package kv

import "context"

// Store is a durable key-value store.
//
// Failures are always recoverable for callers: a failed Load degrades to
// "no value", a failed Save leaves the in-memory state authoritative for the
// session. Implementations must not require any cleanup beyond Close on the
// underlying client, which callers own.
type Store interface {
	// Load returns the value for key. The second return is false when the
	// key is absent.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save overwrites any prior value for key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
