package uow

import (
	"errors"
	"fmt"
)

var (
	ErrRepositoryNotRegistered     = errors.New("uow: repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("uow: repository already registered")
	ErrInvalidRepositoryType       = errors.New("uow: invalid repository type")
)

// repositoryErr adds the repository name to a sentinel, errors.Is keeps matching the sentinel.
func repositoryErr(sentinel error, name RepositoryName) error {
	return fmt.Errorf("%w %q", sentinel, name)
}
