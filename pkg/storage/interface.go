// Package storage declares the persistence ports of the service. Lookups of a
// single record return (nil, nil) when nothing matches; services turn that
// into a NOT_FOUND error with a message fit for API clients.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go wcagrep/pkg/storage AllStorage,Storage,TxStorage
package storage

import "context"

// AllStorage is every record store the services use. It is what a
// transaction callback receives.
type AllStorage interface {
	ProspectStorage
	ScanJobStorage
	ViolationStorage
	TriggerStorage
	ClientStorage
	DoNotContactStorage
	OutreachStorage
	JobStorage
}

// TxStorage is an open transaction. It must not be used after Commit or
// Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the process wide handle.
type Storage interface {
	AllStorage

	Close() error
	// Ping is used by the health endpoint.
	Ping(ctx context.Context) error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx commits when cb returns nil and rolls back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
