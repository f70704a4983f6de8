// Package memstore implements the account store as an in-memory,
// role-partitioned collection. It favors clarity over performance and
// holds data only for the lifetime of the process.
package memstore

import (
	"context"
	"sync"
	"time"

	"medportal/internal/domain/entity"
	"medportal/internal/domain/repository"
)

// AccountStore keeps one insertion-ordered partition per role plus an
// email index per partition. All access goes through the mutex, so a
// single store may be shared across concurrent requests; in particular
// InsertIfAbsent runs its duplicate check and insert under one lock.
type AccountStore struct {
	mu         sync.RWMutex
	now        func() time.Time
	partitions map[entity.Role][]entity.Account
	emailIndex map[entity.Role]map[string]int // email -> slice index
}

// Option customizes a new AccountStore.
type Option func(*AccountStore)

// WithClock overrides the time source used for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *AccountStore) {
		s.now = now
	}
}

// NewAccountStore creates an empty store with one partition per known role.
func NewAccountStore(opts ...Option) *AccountStore {
	s := &AccountStore{
		now:        time.Now,
		partitions: make(map[entity.Role][]entity.Account),
		emailIndex: make(map[entity.Role]map[string]int),
	}
	for _, role := range entity.AllRoles() {
		s.partitions[role] = nil
		s.emailIndex[role] = make(map[string]int)
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewStore exposes the store behind the repository interface for
// dependency injection.
func NewStore() repository.AccountStore {
	return NewAccountStore()
}

// Insert appends the account to its role partition, assigning the next
// sequential ID and stamping CreatedAt. IDs are 1-based positions within
// the partition and are never recycled.
func (s *AccountStore) Insert(_ context.Context, role entity.Role, account entity.Account) (entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(role, account)
}

// InsertIfAbsent is Insert guarded by the duplicate-email check, both
// under the same lock acquisition. Two concurrent registrations with the
// same email cannot both pass the check.
func (s *AccountStore) InsertIfAbsent(_ context.Context, role entity.Role, account entity.Account) (entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.emailIndex[role]
	if !ok {
		return entity.Account{}, repository.ErrUnknownRole
	}
	if _, exists := index[account.Email]; exists {
		return entity.Account{}, repository.ErrDuplicateEmail
	}

	return s.insertLocked(role, account)
}

func (s *AccountStore) insertLocked(role entity.Role, account entity.Account) (entity.Account, error) {
	partition, ok := s.partitions[role]
	if !ok {
		return entity.Account{}, repository.ErrUnknownRole
	}

	account.Role = role
	account.ID = len(partition) + 1
	account.CreatedAt = s.now()

	s.partitions[role] = append(partition, account)
	s.emailIndex[role][account.Email] = len(partition)

	return account, nil
}

// ExistsByEmail reports whether the email is registered in the role's partition.
func (s *AccountStore) ExistsByEmail(_ context.Context, role entity.Role, email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.emailIndex[role][email]

	return exists
}

// FindByEmail returns the account registered under the email in the
// role's partition, or ErrAccountNotFound.
func (s *AccountStore) FindByEmail(_ context.Context, role entity.Role, email string) (entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, exists := s.emailIndex[role][email]; exists {
		return s.partitions[role][i], nil
	}

	return entity.Account{}, repository.ErrAccountNotFound
}

// FindByID returns the account with the partition-scoped ID.
func (s *AccountStore) FindByID(_ context.Context, role entity.Role, id int) (entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partition := s.partitions[role]
	if id < 1 || id > len(partition) {
		return entity.Account{}, repository.ErrAccountNotFound
	}

	return partition[id-1], nil
}

// ListByRole returns a copy of the partition in insertion order.
func (s *AccountStore) ListByRole(_ context.Context, role entity.Role) []entity.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partition := s.partitions[role]
	out := make([]entity.Account, len(partition))
	copy(out, partition)

	return out
}

// Count returns the size of one partition.
func (s *AccountStore) Count(_ context.Context, role entity.Role) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.partitions[role])
}

// CountAll returns the total number of accounts across all partitions.
func (s *AccountStore) CountAll(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, partition := range s.partitions {
		total += len(partition)
	}

	return total
}

// Clear empties every partition. Subsequent inserts start from ID 1 again.
func (s *AccountStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for role := range s.partitions {
		s.partitions[role] = nil
		s.emailIndex[role] = make(map[string]int)
	}
}
