package store

import (
	"context"
	"errors"

	"github.com/cobaltlane/taskhub/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn
	// returns an error and committing otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the case-normalized email is taken;
	// uniqueness is enforced by the storage engine, so a concurrent race
	// on the same email yields exactly one success.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail looks up a user by case-normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error
}

type Tasks interface {
	// CreateTask inserts a new task (id is ULID, owner immutable).
	CreateTask(ctx context.Context, t domain.Task) error

	// GetTaskByID returns a task regardless of owner. Ownership is the
	// service layer's decision so denial can be shaped there.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// ListTasksByOwner returns all of a user's tasks, newest first.
	ListTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)

	// UpdateTask persists title/description/completed and bumps updated_at.
	UpdateTask(ctx context.Context, t domain.Task) error

	// DeleteTask removes a task by id.
	DeleteTask(ctx context.Context, id string) error
}
