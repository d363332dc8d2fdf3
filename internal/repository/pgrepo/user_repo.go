package pgrepo

import (
	"context"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/repository/repoargs"
	"github.com/fsdevblog/dues-desk/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, first_name, last_name, email, password, user_type_id, mobile_phone`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser inserts the user. An email clash yields domain.ErrDuplicateKey, an unknown user type
// domain.ErrForeignKey.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password, user_type_id, mobile_phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		user.FirstName, user.LastName, user.Email, user.Password, user.UserTypeID, user.MobilePhone,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return dbUser, nil
}

// FindUserByEmail returns domain.ErrRecordNotFound when nobody is registered with the email.
func (u *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return dbUser, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
		&user.UserTypeID,
		&user.MobilePhone,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
