package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FirstName   string
	LastName    string
	Email       string
	Password    string
	UserTypeID  int64
	MobilePhone string
}

type Customer struct {
	ID                 int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
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

// Order is a recharge/payment record. DueAmount is the outstanding balance as of the last update
// and is never derived from PaidAmount.
type Order struct {
	ID                   int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	CustomerID           int64
	ProductID            int64
	PaymentMethodID      int64
	RechargeByID         *int64
	Status               OrderStatus
	PaidAmount           decimal.Decimal
	DueAmount            decimal.Decimal
	Comments             string
	PortalRechargeStatus int16
}
