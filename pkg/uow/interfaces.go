package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RepositoryName key a repository factory is registered under.
type RepositoryName string

// Repository is whatever a factory builds; callers assert it with GetRepositoryAs or GetAs.
type Repository any

// RepositoryFactory builds a repository on top of the pool or of a running transaction.
type RepositoryFactory func(DBTX) Repository

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// TX hands out repositories bound to a running transaction.
type TX interface {
	Get(name RepositoryName) (Repository, error)
}

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	// Do commits when fn returns nil and rolls back otherwise.
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	// DoReadOnly gives fn a single snapshot for all of its reads.
	DoReadOnly(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	GetRepository(name RepositoryName) (Repository, error)
}
