// Package store provides keyed storage for server state (documents, jobs,
// edited TOCs). The interface keeps orchestration code free of shared
// mutable state; implementations own the synchronization.
package store

// Store is a keyed value store.
type Store[T any] interface {
	// Get returns the value for id, and whether it exists.
	Get(id string) (T, bool)

	// Put creates or replaces the value for id.
	Put(id string, v T)

	// Delete removes the value for id. Deleting a missing id is a no-op.
	Delete(id string)

	// List returns all stored values in unspecified order.
	List() []T
}
