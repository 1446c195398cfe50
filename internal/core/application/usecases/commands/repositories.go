// Package commands contains the business operations that modify system
// state. Every command follows the same pattern: a validated command object,
// a handler that opens a unit of work, and persistence through repositories
// bound to that transaction.
//
// The parcel lifecycle commands are the only writers of the parcel audit
// trail: the parcel update and its conditional history append always commit
// together or not at all.
package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// Unit of Work interfaces scoped to what each command handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// CustomerRepoFactory provides the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// UserRepoFactory provides the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW manages transactions spanning parcels, customers and users.
	// Parcel commands that resolve courier or customer references use it.
	UoW interface {
		TxManager
		ParcelRepoFactory
		CustomerRepoFactory
		UserRepoFactory
	}

	// UoWFactory creates cross-entity unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
