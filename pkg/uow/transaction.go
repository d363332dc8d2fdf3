package uow

import (
	"github.com/jackc/pgx/v5"
)

// Transaction builds each repository at most once per transaction.
type Transaction struct {
	factories map[RepositoryName]RepositoryFactory
	built     map[RepositoryName]Repository
	tx        pgx.Tx
}

func NewTransaction(tx pgx.Tx, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		factories: factories,
		built:     make(map[RepositoryName]Repository, len(factories)),
		tx:        tx,
	}
}

// Get returns the named repository bound to the transaction.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.built[name]; ok {
		return repo, nil
	}
	factory, ok := t.factories[name]
	if !ok {
		return nil, repositoryErr(ErrRepositoryNotRegistered, name)
	}
	repo := factory(t.tx)
	t.built[name] = repo
	return repo, nil
}

// GetAs is the transactional counterpart of GetRepositoryAs.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var res T
	repo, err := t.Get(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, repositoryErr(ErrInvalidRepositoryType, name)
	}
	return res, nil
}
