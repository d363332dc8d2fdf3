package repoargs

import (
	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
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

// UpdateOrder nil fields keep their stored value.
type UpdateOrder struct {
	Status               *domain.OrderStatus
	PaidAmount           *decimal.Decimal
	DueAmount            *decimal.Decimal
	Comments             *string
	PortalRechargeStatus *int16
	PaymentMethodID      *int64
	ProductID            *int64
	RechargeByID         *int64
}

// IsEmpty reports whether the update touches no column besides updated_at.
func (u UpdateOrder) IsEmpty() bool {
	return u.Status == nil && u.PaidAmount == nil && u.DueAmount == nil && u.Comments == nil &&
		u.PortalRechargeStatus == nil && u.PaymentMethodID == nil && u.ProductID == nil && u.RechargeByID == nil
}
