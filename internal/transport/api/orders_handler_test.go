package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *HandlersTestSuite) TestCreateOrder() {
	var agentID int64 = 4
	created := &domain.Order{
		ID:           20,
		CustomerID:   7,
		Status:       domain.OrderStatusPartial,
		PaidAmount:   decimal.RequireFromString("199.50"),
		DueAmount:    decimal.RequireFromString("100.25"),
		RechargeByID: &agentID,
	}

	s.mockOrderService.EXPECT().
		Create(gomock.Any(), service.CreateOrderArgs{
			CustomerID:           7,
			ProductID:            1,
			PaymentMethodID:      2,
			RechargeByID:         &agentID,
			Status:               domain.OrderStatusPartial,
			PaidAmount:           decimal.RequireFromString("199.50"),
			DueAmount:            decimal.RequireFromString("100.25"),
			Comments:             "cash",
			PortalRechargeStatus: 0,
		}).
		Return(created, nil)
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewValidationError("status must be one of 1, 2, 3, 4"))

	s.Run("all ok", func() {
		res, body := s.request(http.MethodPost, OrdersRoute, `{
			"customer_id": 7, "product_id": 1, "payment_method_id": 2, "recharge_by_id": 4,
			"status": 4, "paid_amount": "199.50", "due_amount": 100.25, "comments": "cash",
			"portal_recharge_status": 0
		}`)
		s.Equal(http.StatusCreated, res.StatusCode)
		order, ok := body["order"].(map[string]any)
		s.Require().True(ok)
		s.Equal("100.25", order["due_amount"])
		s.Equal("partial", order["payment_state"])
	})

	s.Run("missing fields", func() {
		res, body := s.request(http.MethodPost, OrdersRoute, `{"customer_id": 7, "status": 1, "paid_amount": 0}`)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Equal("Missing required fields", body["error"])
		s.ElementsMatch([]any{
			"customer_id", "product_id", "payment_method_id", "status",
			"paid_amount", "due_amount", "portal_recharge_status",
		}, body["required_fields"])
		s.ElementsMatch([]any{"product_id", "payment_method_id", "due_amount", "portal_recharge_status"},
			body["missing_fields"])
	})

	s.Run("invalid status", func() {
		res, body := s.request(http.MethodPost, OrdersRoute, `{
			"customer_id": 7, "product_id": 1, "payment_method_id": 2,
			"status": 9, "paid_amount": 0, "due_amount": 0, "portal_recharge_status": 0
		}`)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Equal("status must be one of 1, 2, 3, 4", body["error"])
	})

	s.Run("malformed body", func() {
		res, _ := s.request(http.MethodPost, OrdersRoute, `{"customer_id": "seven"`)
		s.Equal(http.StatusBadRequest, res.StatusCode)
	})
}

func (s *HandlersTestSuite) TestUpdateOrder() {
	s.mockOrderService.EXPECT().
		Update(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, args service.UpdateOrderArgs) (*domain.Order, error) {
			s.Require().NotNil(args.Status)
			s.Equal(domain.OrderStatusActive, *args.Status)
			s.Require().NotNil(args.DueAmount)
			s.True(args.DueAmount.IsZero())
			s.Require().NotNil(args.Comments)
			s.Equal("settled", *args.Comments)
			s.Nil(args.PaidAmount)
			return &domain.Order{ID: 1, Status: *args.Status}, nil
		})
	s.mockOrderService.EXPECT().
		Update(gomock.Any(), int64(2), gomock.Any()).
		Return(nil, fmt.Errorf("updating order: %w", domain.ErrRecordNotFound))
	s.mockOrderService.EXPECT().
		Update(gomock.Any(), int64(3), service.UpdateOrderArgs{}).
		Return(nil, domain.NewValidationError("no updatable fields provided"))

	cases := []struct {
		name       string
		url        string
		payload    string
		wantStatus int
		wantError  string
	}{
		{
			name:       "all ok, bookkeeping fields ignored",
			url:        "/orders/1",
			payload:    `{"id": 99, "status": 2, "due_amount": "0", "comments": "settled", "updated_at": "2020-01-01"}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "not found",
			url:        "/orders/2",
			payload:    `{"status": 2}`,
			wantStatus: http.StatusNotFound,
			wantError:  "Order not found",
		}, {
			name:       "only ignored fields",
			url:        "/orders/3",
			payload:    `{"id": 3, "created_at": "2020-01-01"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "no updatable fields provided",
		}, {
			name:       "unknown field",
			url:        "/orders/1",
			payload:    `{"customer_id": 8}`,
			wantStatus: http.StatusBadRequest,
			wantError: `field "customer_id" cannot be updated, allowed fields: status, paid_amount, due_amount, ` +
				`comments, portal_recharge_status, payment_method_id, product_id, recharge_by_id`,
		}, {
			name:       "wrong type",
			url:        "/orders/1",
			payload:    `{"status": "paid"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid value for status",
		}, {
			name:       "null field agent",
			url:        "/orders/1",
			payload:    `{"recharge_by_id": null}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "recharge_by_id cannot be null",
		}, {
			name:       "null comments among valid fields",
			url:        "/orders/1",
			payload:    `{"status": 2, "comments": null}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "comments cannot be null",
		}, {
			name:       "not an object",
			url:        "/orders/1",
			payload:    `[1, 2]`,
			wantStatus: http.StatusBadRequest,
			wantError:  "request body must be a JSON object",
		}, {
			name:       "bad id",
			url:        "/orders/one",
			payload:    `{"status": 2}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid order id",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, body := s.request(http.MethodPut, t.url, t.payload)
			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantError != "" {
				s.Equal(t.wantError, body["error"])
			}
		})
	}
}

func (s *HandlersTestSuite) TestDeleteAndReadOrders() {
	s.mockOrderService.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	s.mockOrderService.EXPECT().Delete(gomock.Any(), int64(2)).Return(domain.ErrRecordNotFound)
	s.mockOrderService.EXPECT().Delete(gomock.Any(), int64(0)).Return(domain.ErrRecordNotFound)
	s.mockOrderService.EXPECT().GetByID(gomock.Any(), int64(-4)).Return(nil, domain.ErrRecordNotFound)
	s.mockOrderService.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(&domain.Order{ID: 1, DueAmount: decimal.RequireFromString("12.30")}, nil)
	s.mockOrderService.EXPECT().List(gomock.Any()).
		Return(nil, errors.Join(domain.ErrUnknown, errors.New("password authentication failed for user \"app\"")))

	res, body := s.request(http.MethodDelete, "/orders/1", nil)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("Order deleted", body["message"])

	res, body = s.request(http.MethodDelete, "/orders/2", nil)
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.Equal("Order not found", body["error"])

	res, body = s.request(http.MethodDelete, "/orders/0", nil)
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.Equal("Order not found", body["error"])

	res, body = s.request(http.MethodGet, "/orders/-4", nil)
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.Equal("Order not found", body["error"])

	res, body = s.request(http.MethodGet, "/orders/1", nil)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("12.3", body["order"].(map[string]any)["due_amount"])

	res, body = s.request(http.MethodGet, OrdersRoute, nil)
	s.Equal(http.StatusInternalServerError, res.StatusCode)
	s.Equal("internal server error", body["error"])
}
