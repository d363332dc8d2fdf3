package pgrepo

import (
	"context"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/repository/repoargs"
	"github.com/fsdevblog/dues-desk/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, created_at, updated_at, customer_id, product_id, payment_method_id, recharge_by_id,
	status, paid_amount, due_amount, comments, portal_recharge_status`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// CreateOrder inserts the order. Dangling customer, product, payment method or field agent references
// yield domain.ErrForeignKey.
func (o *OrderRepository) CreateOrder(ctx context.Context, order repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders (customer_id, product_id, payment_method_id, recharge_by_id, status, paid_amount,
			due_amount, comments, portal_recharge_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+orderColumns,
		order.CustomerID,
		order.ProductID,
		order.PaymentMethodID,
		order.RechargeByID,
		int16(order.Status),
		order.PaidAmount,
		order.DueAmount,
		order.Comments,
		order.PortalRechargeStatus,
	)
	dbOrder, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for customer %d", order.CustomerID)
	}
	return dbOrder, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	dbOrder, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by id %d", id)
	}
	return dbOrder, nil
}

// List returns every order, newest first.
func (o *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, convertErr(err, "listing orders")
	}
	return collectOrders(rows, "listing orders")
}

// UpdateOrder applies the non-nil fields of update and always stamps updated_at. Returns
// domain.ErrRecordNotFound for an unknown id.
func (o *OrderRepository) UpdateOrder(
	ctx context.Context,
	id int64,
	update repoargs.UpdateOrder,
) (*domain.Order, error) {
	var status *int16
	if update.Status != nil {
		s := int16(*update.Status)
		status = &s
	}
	row := o.conn.QueryRow(ctx,
		`UPDATE orders SET
			status = COALESCE($2, status),
			paid_amount = COALESCE($3, paid_amount),
			due_amount = COALESCE($4, due_amount),
			comments = COALESCE($5, comments),
			portal_recharge_status = COALESCE($6, portal_recharge_status),
			payment_method_id = COALESCE($7, payment_method_id),
			product_id = COALESCE($8, product_id),
			recharge_by_id = COALESCE($9, recharge_by_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+orderColumns,
		id,
		status,
		update.PaidAmount,
		update.DueAmount,
		update.Comments,
		update.PortalRechargeStatus,
		update.PaymentMethodID,
		update.ProductID,
		update.RechargeByID,
	)
	dbOrder, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating order with id %d", id)
	}
	return dbOrder, nil
}

// DeleteOrder returns domain.ErrRecordNotFound when no row was removed.
func (o *OrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := o.conn.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting order with id %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting order with id %d", id)
	}
	return nil
}

// GetCustomerDues returns the orders of the customer that are in one of the statuses and still owe
// something (due_amount > 0), oldest first.
func (o *OrderRepository) GetCustomerDues(
	ctx context.Context,
	customerID int64,
	statuses []domain.OrderStatus,
) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE customer_id = $1 AND status = ANY($2) AND due_amount > 0
		ORDER BY created_at, id`,
		customerID, statusCodes(statuses),
	)
	if err != nil {
		return nil, convertErr(err, "getting dues of customer %d", customerID)
	}
	return collectOrders(rows, "getting dues of customer %d", customerID)
}

// GetByRechargeBy returns the orders recorded by the field agent in one of the statuses, newest first.
// Due amounts are not filtered.
func (o *OrderRepository) GetByRechargeBy(
	ctx context.Context,
	agentID int64,
	statuses []domain.OrderStatus,
) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE recharge_by_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC, id DESC`,
		agentID, statusCodes(statuses),
	)
	if err != nil {
		return nil, convertErr(err, "getting orders recorded by %d", agentID)
	}
	return collectOrders(rows, "getting orders recorded by %d", agentID)
}

// GetByStatuses returns every order in one of the statuses, newest first.
func (o *OrderRepository) GetByStatuses(ctx context.Context, statuses []domain.OrderStatus) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE status = ANY($1) ORDER BY created_at DESC, id DESC`,
		statusCodes(statuses),
	)
	if err != nil {
		return nil, convertErr(err, "getting orders by statuses %v", statuses)
	}
	return collectOrders(rows, "getting orders by statuses %v", statuses)
}

func collectOrders(rows pgx.Rows, format string, formatArgs ...any) ([]domain.Order, error) {
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		order, scanErr := scanOrder(row)
		if scanErr != nil {
			return domain.Order{}, scanErr
		}
		return *order, nil
	})
	if err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	return orders, nil
}

// scanOrder reads an orderColumns row. NULL amounts read as zero.
func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order      domain.Order
		status     int16
		paidAmount decimal.NullDecimal
		dueAmount  decimal.NullDecimal
		comments   *string
	)
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.CustomerID,
		&order.ProductID,
		&order.PaymentMethodID,
		&order.RechargeByID,
		&status,
		&paidAmount,
		&dueAmount,
		&comments,
		&order.PortalRechargeStatus,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	order.Status = domain.OrderStatus(status)
	order.PaidAmount = paidAmount.Decimal
	order.DueAmount = dueAmount.Decimal
	if comments != nil {
		order.Comments = *comments
	}
	return &order, nil
}

func statusCodes(statuses []domain.OrderStatus) []int16 {
	codes := make([]int16, len(statuses))
	for i, s := range statuses {
		codes[i] = int16(s)
	}
	return codes
}
