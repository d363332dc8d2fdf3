package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/dues-desk/internal/transport/api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	SignupRoute        = "/signup"
	LoginRoute         = "/login"
	MeRoute            = "/api/user/me"
	CustomersRoute     = "/customers"
	CustomerRoute      = "/customers/:id"
	CustomerDuesRoute  = "/customers/:id/dues"
	OrdersRoute        = "/orders"
	OrderRoute         = "/orders/:id"
	FieldUserDuesRoute = "/field-users/:id/dues"
	PendingOrdersRoute = "/pending-orders"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	CustomerService CustomerServicer
	OrderService    OrderServicer
	DuesService     DuesServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	customersHandler := NewCustomersHandler(args.CustomerService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	duesHandler := NewDuesHandler(args.DuesService, args.OrderService)

	r.POST(SignupRoute, authHandler.Signup)
	r.POST(LoginRoute, authHandler.Login)
	r.GET(MeRoute, middlewares.AuthRequired(args.JWTSecretKey), authHandler.Me)

	r.GET(CustomersRoute, customersHandler.Index)
	r.POST(CustomersRoute, customersHandler.Create)
	r.GET(CustomerRoute, customersHandler.Show)
	r.GET(CustomerDuesRoute, duesHandler.Customer)

	r.GET(OrdersRoute, ordersHandler.Index)
	r.POST(OrdersRoute, ordersHandler.Create)
	r.GET(OrderRoute, ordersHandler.Show)
	r.PUT(OrderRoute, ordersHandler.Update)
	r.DELETE(OrderRoute, ordersHandler.Delete)

	r.GET(FieldUserDuesRoute, duesHandler.FieldUser)
	r.GET(PendingOrdersRoute, duesHandler.Pending)
	return r, nil
}
