package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *HandlersTestSuite) TestCustomerDues() {
	customer := &domain.Customer{ID: 7, CardNumber: "VC-7", StbNumber: "STB-7", Address: "7 Lake View"}
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: 1, Status: domain.OrderStatusPending, DueAmount: decimal.NewFromInt(50), CreatedAt: created},
		{ID: 3, Status: domain.OrderStatusPending, DueAmount: decimal.NewFromInt(30), CreatedAt: created},
	}

	s.mockDuesService.EXPECT().CustomerDues(gomock.Any(), int64(7)).
		Return(domain.AggregateCustomerDues(customer, orders), nil)
	s.mockDuesService.EXPECT().CustomerDues(gomock.Any(), int64(8)).
		Return(domain.AggregateCustomerDues(&domain.Customer{ID: 8}, nil), nil)
	s.mockDuesService.EXPECT().CustomerDues(gomock.Any(), int64(99)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockDuesService.EXPECT().CustomerDues(gomock.Any(), int64(0)).
		Return(nil, domain.ErrRecordNotFound)

	s.Run("with dues", func() {
		res, body := s.request(http.MethodGet, "/customers/7/dues", nil)
		s.Equal(http.StatusOK, res.StatusCode)
		s.Equal("80", body["total_due"])
		s.InDelta(2, body["due_count"], 0)
		s.Equal("VC-7", body["customer"].(map[string]any)["card_number"])

		dues, ok := body["dues"].([]any)
		s.Require().True(ok)
		s.Require().Len(dues, 2)
		first := dues[0].(map[string]any)
		s.Equal("50", first["due_amount"])
		s.Equal("Pending Payment", first["status"])
	})

	s.Run("no dues", func() {
		res, body := s.request(http.MethodGet, "/customers/8/dues", nil)
		s.Equal(http.StatusOK, res.StatusCode)
		s.Equal("0", body["total_due"])
		s.InDelta(0, body["due_count"], 0)
		s.Empty(body["dues"])
	})

	s.Run("unknown customer", func() {
		res, body := s.request(http.MethodGet, "/customers/99/dues", nil)
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("Customer not found", body["error"])
	})

	s.Run("zero id", func() {
		res, body := s.request(http.MethodGet, "/customers/0/dues", nil)
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("Customer not found", body["error"])
	})

	s.Run("non numeric id", func() {
		res, body := s.request(http.MethodGet, "/customers/seven/dues", nil)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Equal("invalid customer id", body["error"])
	})
}

func (s *HandlersTestSuite) TestFieldUserDues() {
	var agentID int64 = 4
	s.mockDuesService.EXPECT().FieldAgentDues(gomock.Any(), int64(4)).
		Return([]domain.Order{
			{ID: 9, RechargeByID: &agentID, Status: domain.OrderStatusPartial, DueAmount: decimal.Zero},
		}, nil)
	s.mockDuesService.EXPECT().FieldAgentDues(gomock.Any(), int64(5)).
		Return([]domain.Order{}, nil)

	res, body := s.request(http.MethodGet, "/field-users/4/dues", nil)
	s.Equal(http.StatusOK, res.StatusCode)
	s.InDelta(1, body["count"], 0)
	s.Len(body["dues"], 1)

	res, body = s.request(http.MethodGet, "/field-users/5/dues", nil)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("No dues found", body["message"])
	s.InDelta(0, body["count"], 0)
	s.Empty(body["dues"])
}

func (s *HandlersTestSuite) TestPendingOrders() {
	s.mockOrderService.EXPECT().Pending(gomock.Any()).
		Return([]domain.Order{
			{ID: 2, Status: domain.OrderStatusPartial},
			{ID: 1, Status: domain.OrderStatusPending},
		}, nil)

	res, body := s.request(http.MethodGet, PendingOrdersRoute, nil)
	s.Equal(http.StatusOK, res.StatusCode)
	orders, ok := body["orders"].([]any)
	s.Require().True(ok)
	s.Len(orders, 2)
}
