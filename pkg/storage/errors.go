package storage

import "errors"

var (
	// ErrAlreadyInTx means Begin was called on a storage that already holds a transaction.
	ErrAlreadyInTx = errors.New("storage is already in a transaction")
	// ErrNotInTx means Commit or Rollback was called without a prior Begin.
	ErrNotInTx = errors.New("storage has no open transaction")
	// ErrDuplicate is returned when a write collides with a unique column,
	// for example a client API key that is already issued.
	ErrDuplicate = errors.New("duplicate record")
)
