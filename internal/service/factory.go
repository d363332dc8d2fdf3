package service

import (
	"fmt"

	"github.com/fsdevblog/dues-desk/internal/service/psswd"
	"github.com/fsdevblog/dues-desk/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	CustomerService *CustomerService
	OrderService    *OrderService
	DuesService     *DuesService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.New(psswd.DefaultCost))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	customerService, customerServiceErr := NewCustomerService(unitOfWork)
	if customerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", customerServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	duesService, duesServiceErr := NewDuesService(unitOfWork)
	if duesServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", duesServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		CustomerService: customerService,
		OrderService:    orderService,
		DuesService:     duesService,
	}, nil
}
