package service

import (
	"context"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer repoargs.CreateCustomer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, id int64, update repoargs.UpdateOrder) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	GetCustomerDues(ctx context.Context, customerID int64, statuses []domain.OrderStatus) ([]domain.Order, error)
	GetByRechargeBy(ctx context.Context, agentID int64, statuses []domain.OrderStatus) ([]domain.Order, error)
	GetByStatuses(ctx context.Context, statuses []domain.OrderStatus) ([]domain.Order, error)
}
