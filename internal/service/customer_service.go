package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/repository/repoargs"
	"github.com/fsdevblog/dues-desk/pkg/uow"
)

type CustomerService struct {
	customerRepo CustomerRepository
}

func NewCustomerService(u uow.UOW) (*CustomerService, error) {
	rName := uow.RepositoryName(repoargs.CustomerRepoName)
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, rName)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CustomerService{customerRepo: customerRepo}, nil
}

type CreateCustomerArgs struct {
	UserID             *int64
	Address            string
	StbNumber          string
	CardNumber         string
	OldCardNumber      string
	OldStbNumber       string
	AreaID             int64
	SubscriptionStatus string
	InstallationDate   *time.Time
	ExpiryDate         *time.Time
}

// Create stores a customer. Unknown user or area references yield domain.ErrForeignKey.
func (c *CustomerService) Create(ctx context.Context, args CreateCustomerArgs) (*domain.Customer, error) {
	if args.InstallationDate != nil && args.ExpiryDate != nil && args.ExpiryDate.Before(*args.InstallationDate) {
		return nil, domain.NewValidationError("expiry_date must not be before installation_date")
	}

	customer, err := c.customerRepo.CreateCustomer(ctx, repoargs.CreateCustomer{
		UserID:             args.UserID,
		Address:            args.Address,
		StbNumber:          args.StbNumber,
		CardNumber:         args.CardNumber,
		OldCardNumber:      args.OldCardNumber,
		OldStbNumber:       args.OldStbNumber,
		AreaID:             args.AreaID,
		SubscriptionStatus: args.SubscriptionStatus,
		InstallationDate:   args.InstallationDate,
		ExpiryDate:         args.ExpiryDate,
	})
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return customer, nil
}

func (c *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customer, nil
}

func (c *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := c.customerRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customers, nil
}
