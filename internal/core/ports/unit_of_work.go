package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a business operation. The
// parcel write and its conditional history append always happen inside one
// unit of work, so a crash between the two leaves no half-recorded change.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after a
	// successful commit is a no-op error and safe to defer.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a repository bound to the current
	// transaction.
	ParcelRepository() ParcelRepository

	// CustomerRepository returns a repository bound to the current
	// transaction.
	CustomerRepository() CustomerRepository

	// UserRepository returns a repository bound to the current
	// transaction.
	UserRepository() UserRepository
}
