package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/service"
)

// UserServicer exists for mocking only.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type CustomerServicer interface {
	Create(ctx context.Context, args service.CreateCustomerArgs) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type OrderServicer interface {
	Create(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	Update(ctx context.Context, id int64, args service.UpdateOrderArgs) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Pending(ctx context.Context) ([]domain.Order, error)
}

type DuesServicer interface {
	CustomerDues(ctx context.Context, customerID int64) (*domain.CustomerDues, error)
	FieldAgentDues(ctx context.Context, agentID int64) ([]domain.Order, error)
}
