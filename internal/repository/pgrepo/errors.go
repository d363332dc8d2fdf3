package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// convertErr brings store errors to the repository layer form: a formatted context message, the domain
// error kind and the original message.
//   - pgx.ErrNoRows becomes domain.ErrRecordNotFound.
//   - unique violations become domain.ErrDuplicateKey, foreign key violations domain.ErrForeignKey.
//   - everything else is domain.ErrUnknown.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrForeignKey
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
