package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DueItem struct {
	OrderID   int64
	DueAmount decimal.Decimal
	Status    string
	CreatedAt time.Time
}

type CustomerDues struct {
	Customer *Customer
	Items    []DueItem
	TotalDue decimal.Decimal
	Count    int
}

// AggregateCustomerDues builds the dues view of a customer. Only orders in a dues status with a
// positive due amount are listed; TotalDue is the exact sum of the listed amounts.
func AggregateCustomerDues(customer *Customer, orders []Order) *CustomerDues {
	dues := &CustomerDues{
		Customer: customer,
		Items:    make([]DueItem, 0, len(orders)),
		TotalDue: decimal.Zero,
	}
	for _, order := range orders {
		if !order.Status.HasDues() || !order.DueAmount.IsPositive() {
			continue
		}
		dues.Items = append(dues.Items, DueItem{
			OrderID:   order.ID,
			DueAmount: order.DueAmount,
			Status:    order.Status.Label(),
			CreatedAt: order.CreatedAt,
		})
		dues.TotalDue = dues.TotalDue.Add(order.DueAmount)
	}
	dues.Count = len(dues.Items)
	return dues
}

// FilterAgentDues keeps the orders in a dues status regardless of their due amount.
func FilterAgentDues(orders []Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, order := range orders {
		if order.Status.HasDues() {
			res = append(res, order)
		}
	}
	return res
}
