// Package storage defines the persistence interfaces the discovery services
// depend on. Backends (PostgreSQL in pkg/storage/postgres) implement them; the
// services only ever see these interfaces, which keeps them testable with
// generated mocks.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the union of every domain-specific storage capability.
type AllStorage interface {
	CatalogStorage
	EngagementStorage
	SuggestionStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction.
// It becomes unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists every change made through the handle.
	Commit() error
	// Rollback discards every change made through the handle.
	Rollback() error
}

// Storage is the root, non-transactional storage handle.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error
	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
