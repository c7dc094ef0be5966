package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on the root handle.
	ErrNotInTx = errors.New("not in tx")
	// ErrNoJobQueue is returned by AddJob on a handle without a job client.
	ErrNoJobQueue = errors.New("no job queue configured")
)
