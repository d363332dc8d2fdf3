package pgrepo

import (
	"context"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/repository/repoargs"
	"github.com/fsdevblog/dues-desk/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, created_at, updated_at, user_id, address, stb_number, card_number, old_card_number,
	old_stb_number, area_id, subscription_status, installation_date, expiry_date`

type CustomerRepository struct {
	conn uow.DBTX
}

func NewCustomerRepository(conn uow.DBTX) *CustomerRepository {
	return &CustomerRepository{conn: conn}
}

// CreateCustomer inserts the customer. Unknown user or area references yield domain.ErrForeignKey.
func (c *CustomerRepository) CreateCustomer(
	ctx context.Context,
	customer repoargs.CreateCustomer,
) (*domain.Customer, error) {
	row := c.conn.QueryRow(ctx,
		`INSERT INTO customers (user_id, address, stb_number, card_number, old_card_number, old_stb_number,
			area_id, subscription_status, installation_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+customerColumns,
		customer.UserID,
		customer.Address,
		customer.StbNumber,
		customer.CardNumber,
		customer.OldCardNumber,
		customer.OldStbNumber,
		customer.AreaID,
		customer.SubscriptionStatus,
		customer.InstallationDate,
		customer.ExpiryDate,
	)
	dbCustomer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "creating customer")
	}
	return dbCustomer, nil
}

func (c *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := c.conn.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	dbCustomer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer by id %d", id)
	}
	return dbCustomer, nil
}

func (c *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := c.conn.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing customers")
	}
	customers, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		customer, scanErr := scanCustomer(row)
		if scanErr != nil {
			return domain.Customer{}, scanErr
		}
		return *customer, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing customers")
	}
	return customers, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer
	if err := row.Scan(
		&customer.ID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
		&customer.UserID,
		&customer.Address,
		&customer.StbNumber,
		&customer.CardNumber,
		&customer.OldCardNumber,
		&customer.OldStbNumber,
		&customer.AreaID,
		&customer.SubscriptionStatus,
		&customer.InstallationDate,
		&customer.ExpiryDate,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &customer, nil
}
