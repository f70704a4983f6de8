// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"medportal/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned by InsertIfAbsent when the email is
	// already registered in the role's partition.
	ErrDuplicateEmail = errors.New("email already registered for this role")

	// ErrUnknownRole is returned when a role has no partition in the store.
	ErrUnknownRole = errors.New("unknown role")
)

// AccountStore is the port for the role-partitioned account collection.
//
// Each role owns an insertion-ordered partition. Inserts assign the
// account's ID (1-based position within the partition) and stamp
// CreatedAt; the caller never supplies either. Email uniqueness is
// scoped to the partition: the same email may exist once as a patient
// and once as a provider.
type AccountStore interface {
	// Insert appends the account to its role partition unconditionally.
	// The caller is responsible for duplicate pre-checks.
	Insert(ctx context.Context, role entity.Role, account entity.Account) (entity.Account, error)

	// InsertIfAbsent performs the duplicate check and the insert as one
	// atomic unit, returning ErrDuplicateEmail when the email is taken.
	InsertIfAbsent(ctx context.Context, role entity.Role, account entity.Account) (entity.Account, error)

	// ExistsByEmail reports whether any record in the role's partition
	// has an exactly matching email.
	ExistsByEmail(ctx context.Context, role entity.Role, email string) bool

	// FindByEmail returns the first matching record in insertion order,
	// or ErrAccountNotFound.
	FindByEmail(ctx context.Context, role entity.Role, email string) (entity.Account, error)

	// FindByID returns the record with the given partition-scoped ID,
	// or ErrAccountNotFound.
	FindByID(ctx context.Context, role entity.Role, id int) (entity.Account, error)

	// ListByRole returns the partition's records in insertion order.
	ListByRole(ctx context.Context, role entity.Role) []entity.Account

	// Count returns the size of one partition.
	Count(ctx context.Context, role entity.Role) int

	// CountAll returns the total number of accounts across all partitions.
	CountAll(ctx context.Context) int

	// Clear empties every partition. Administrative reset only.
	Clear(ctx context.Context)
}
