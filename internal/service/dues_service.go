package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/repository/repoargs"
	"github.com/fsdevblog/dues-desk/pkg/uow"
)

// DuesService aggregates outstanding balances per customer and per field agent.
type DuesService struct {
	uow       uow.UOW
	orderRepo OrderRepository
}

func NewDuesService(u uow.UOW) (*DuesService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &DuesService{
		uow:       u,
		orderRepo: orderRepo,
	}, nil
}

// CustomerDues resolves the customer and sums the due amounts of its pending and partially paid orders.
//
// Both reads run in one read-only transaction so the customer and its orders come from the same snapshot.
// Returns domain.ErrRecordNotFound when the customer does not exist.
func (d *DuesService) CustomerDues(ctx context.Context, customerID int64) (*domain.CustomerDues, error) {
	var dues *domain.CustomerDues

	txErr := d.uow.DoReadOnly(ctx, func(c context.Context, tx uow.TX) error {
		customerRepo, repoErr := uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		customer, customerErr := customerRepo.FindByID(c, customerID)
		if customerErr != nil {
			return customerErr //nolint:wrapcheck
		}

		orders, ordersErr := orderRepo.GetCustomerDues(c, customerID, domain.DueStatuses)
		if ordersErr != nil {
			return ordersErr //nolint:wrapcheck
		}

		dues = domain.AggregateCustomerDues(customer, orders)
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("customer dues: %w", txErr)
	}
	return dues, nil
}

// FieldAgentDues returns the pending and partially paid orders recorded by the agent, newest first.
// An empty slice means the agent has no dues; it is not an error.
func (d *DuesService) FieldAgentDues(ctx context.Context, agentID int64) ([]domain.Order, error) {
	orders, err := d.orderRepo.GetByRechargeBy(ctx, agentID, domain.DueStatuses)
	if err != nil {
		return nil, fmt.Errorf("field agent dues: %w", err)
	}
	return domain.FilterAgentDues(orders), nil
}
