package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/repository/repoargs"
	"github.com/fsdevblog/dues-desk/pkg/uow"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OrderService{orderRepo: orderRepo}, nil
}

type CreateOrderArgs struct {
	CustomerID           int64
	ProductID            int64
	PaymentMethodID      int64
	RechargeByID         *int64
	Status               domain.OrderStatus
	PaidAmount           decimal.Decimal
	DueAmount            decimal.Decimal
	Comments             string
	PortalRechargeStatus int16
}

// Create stores a new order. Invalid status or negative amounts yield *domain.ValidationError, dangling
// references domain.ErrForeignKey.
func (o *OrderService) Create(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	if err := validateOrderFields(&args.Status, &args.PaidAmount, &args.DueAmount); err != nil {
		return nil, err
	}

	order, err := o.orderRepo.CreateOrder(ctx, repoargs.CreateOrder{
		CustomerID:           args.CustomerID,
		ProductID:            args.ProductID,
		PaymentMethodID:      args.PaymentMethodID,
		RechargeByID:         args.RechargeByID,
		Status:               args.Status,
		PaidAmount:           args.PaidAmount,
		DueAmount:            args.DueAmount,
		Comments:             args.Comments,
		PortalRechargeStatus: args.PortalRechargeStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	return order, nil
}

// UpdateOrderArgs nil fields are left untouched.
type UpdateOrderArgs struct {
	Status               *domain.OrderStatus
	PaidAmount           *decimal.Decimal
	DueAmount            *decimal.Decimal
	Comments             *string
	PortalRechargeStatus *int16
	PaymentMethodID      *int64
	ProductID            *int64
	RechargeByID         *int64
}

// Update applies the given fields and stamps updated_at. Concurrent updates are not coordinated, the
// last write wins. Returns domain.ErrRecordNotFound for an unknown id.
func (o *OrderService) Update(ctx context.Context, id int64, args UpdateOrderArgs) (*domain.Order, error) {
	update := repoargs.UpdateOrder{
		Status:               args.Status,
		PaidAmount:           args.PaidAmount,
		DueAmount:            args.DueAmount,
		Comments:             args.Comments,
		PortalRechargeStatus: args.PortalRechargeStatus,
		PaymentMethodID:      args.PaymentMethodID,
		ProductID:            args.ProductID,
		RechargeByID:         args.RechargeByID,
	}
	if update.IsEmpty() {
		return nil, domain.NewValidationError("no updatable fields provided")
	}
	if err := validateOrderFields(args.Status, args.PaidAmount, args.DueAmount); err != nil {
		return nil, err
	}

	order, err := o.orderRepo.UpdateOrder(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}
	return order, nil
}

// Delete returns domain.ErrRecordNotFound when there was nothing to remove.
func (o *OrderService) Delete(ctx context.Context, id int64) error {
	if err := o.orderRepo.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}

func (o *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := o.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// List returns all orders, newest first.
func (o *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// Pending returns every pending or partially paid order, newest first.
func (o *OrderService) Pending(ctx context.Context) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByStatuses(ctx, domain.DueStatuses)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

func validateOrderFields(status *domain.OrderStatus, paid, due *decimal.Decimal) error {
	if status != nil && !status.Valid() {
		return domain.NewValidationError("status must be one of 1, 2, 3, 4")
	}
	if paid != nil && paid.IsNegative() {
		return domain.NewValidationError("paid_amount must not be negative")
	}
	if due != nil && due.IsNegative() {
		return domain.NewValidationError("due_amount must not be negative")
	}
	return nil
}
