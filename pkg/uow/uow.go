package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UnitOfWork owns the connection pool and a registry of repository factories. Repositories obtained
// through GetRepository run on the pool, the ones obtained inside Do share a transaction.
type UnitOfWork struct {
	conn         *pgxpool.Pool
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// Register adds a repository factory. Returns ErrRepositoryAlreadyRegistered on a name clash.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return repositoryErr(ErrRepositoryAlreadyRegistered, name)
	}
	u.repositories[name] = factory
	return nil
}

// Do runs fn inside a read-write transaction. The transaction commits when fn returns nil.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) error {
	return u.run(ctx, pgx.TxOptions{}, fn)
}

// DoReadOnly runs fn inside a read-only repeatable read transaction, so every query of fn sees the
// same snapshot.
func (u *UnitOfWork) DoReadOnly(ctx context.Context, fn func(context.Context, TX) error) error {
	return u.run(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func (u *UnitOfWork) run(ctx context.Context, opts pgx.TxOptions, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, opts)
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if fnErr := fn(ctx, NewTransaction(tx, u.repositories)); fnErr != nil {
		return fnErr
	}
	return tx.Commit(ctx) //nolint:wrapcheck
}

// GetRepository returns a pool-bound repository or ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.conn), nil
	}
	return nil, repositoryErr(ErrRepositoryNotRegistered, name)
}

// GetRepositoryAs fetches the repository registered as name and asserts it to T.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, repositoryErr(ErrInvalidRepositoryType, name)
	}
	return r, nil
}
