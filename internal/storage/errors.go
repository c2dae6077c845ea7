package storage

import dErrors "condogate/pkg/domain-errors"

var (
	// ErrNotFound keeps storage-specific 404s consistent across in-memory
	// and Postgres implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")
)
